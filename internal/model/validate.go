package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the record against the entry-form constraints: positive
// match and team numbers, non-negative counters, ratings in 1-5, and a
// legal value for every enum field. Records are validated here, at the
// construction boundary; the scoring and aggregation code assumes valid
// input and does no clamping of its own.
func (m *MatchRecord) Validate() error {
	if err := validate.Struct(m); err != nil {
		return eris.Wrap(err, "model: invalid match record")
	}
	return nil
}

// Validate checks the pit record's entry-form constraints.
func (p *PitRecord) Validate() error {
	if err := validate.Struct(p); err != nil {
		return eris.Wrap(err, "model: invalid pit record")
	}
	return nil
}
