package store

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// ErrNotFound is returned when an operation references a record id that no
// longer exists. The collections are left unchanged.
var ErrNotFound = eris.New("record not found")

// MatchFilter specifies criteria for listing match records.
type MatchFilter struct {
	TeamNumber  int `json:"team_number,omitempty"`
	MatchNumber int `json:"match_number,omitempty"`
	Limit       int `json:"limit,omitempty"`
	Offset      int `json:"offset,omitempty"`
}

// PitFilter specifies criteria for listing pit records.
type PitFilter struct {
	TeamNumber int `json:"team_number,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Offset     int `json:"offset,omitempty"`
}

// Store is the sole owner of the record collections. It assigns ids and
// creation timestamps at append time; everything downstream treats them as
// opaque. Match records support full-record replace and delete by id; pit
// records are append-only snapshots. All reads return records in creation
// order so aggregation enumeration is deterministic.
type Store interface {
	// Match records
	AddMatch(ctx context.Context, rec model.MatchRecord) (*model.MatchRecord, error)
	GetMatch(ctx context.Context, id string) (*model.MatchRecord, error)
	ListMatches(ctx context.Context, filter MatchFilter) ([]model.MatchRecord, error)
	ReplaceMatch(ctx context.Context, id string, rec model.MatchRecord) (*model.MatchRecord, error)
	DeleteMatch(ctx context.Context, id string) error
	ClearMatches(ctx context.Context) error

	// Pit records
	AddPit(ctx context.Context, rec model.PitRecord) (*model.PitRecord, error)
	GetPit(ctx context.Context, id string) (*model.PitRecord, error)
	ListPits(ctx context.Context, filter PitFilter) ([]model.PitRecord, error)
	ClearPits(ctx context.Context) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// IsNotFound reports whether err is a record-not-found error from a Store.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
