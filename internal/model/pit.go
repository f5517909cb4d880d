package model

import "time"

// DrivetrainType is the robot's drive base category.
type DrivetrainType string

const (
	DrivetrainTank    DrivetrainType = "tank"
	DrivetrainMecanum DrivetrainType = "mecanum"
	DrivetrainSwerve  DrivetrainType = "swerve"
	DrivetrainOther   DrivetrainType = "other"
)

// PreferredRole is the role a team says it plays best.
type PreferredRole string

const (
	RoleSampler PreferredRole = "sampler"
	RoleScorer  PreferredRole = "scorer"
	RoleHybrid  PreferredRole = "hybrid"
)

// PreferredZone is the field zone a team prefers to work in.
type PreferredZone string

const (
	ZoneObservation PreferredZone = "observation"
	ZoneNet         PreferredZone = "net"
	ZoneSpecimen    PreferredZone = "specimen"
	ZoneMixed       PreferredZone = "mixed"
)

// CapabilitySet is the self-reported set of scoring abilities from a pit
// visit. The six booleans are the capabilities counted by alliance
// coverage; MaxAscent is reported alongside but not part of coverage.
type CapabilitySet struct {
	CollectSamples bool        `json:"collect_samples"`
	NetZone        bool        `json:"net_zone"`
	LowBasket      bool        `json:"low_basket"`
	HighBasket     bool        `json:"high_basket"`
	LowChamber     bool        `json:"low_chamber"`
	HighChamber    bool        `json:"high_chamber"`
	MaxAscent      AscentLevel `json:"max_ascent" validate:"oneof=none level1 level2 level3"`
}

// Flags returns the six coverage capabilities in their canonical order.
func (c CapabilitySet) Flags() [6]bool {
	return [6]bool{
		c.CollectSamples,
		c.NetZone,
		c.LowBasket,
		c.HighBasket,
		c.LowChamber,
		c.HighChamber,
	}
}

// PitRecord is one team's static robot profile captured during a pit visit.
// Pit records are append-only: there is no edit or delete, each submission
// is an independent snapshot.
type PitRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TeamNumber int    `json:"team_number" validate:"min=1"`
	TeamName   string `json:"team_name" validate:"required"`

	Drivetrain      DrivetrainType `json:"drivetrain" validate:"oneof=tank mecanum swerve other"`
	DrivetrainNotes string         `json:"drivetrain_notes,omitempty"`
	LengthIn        float64        `json:"length_in" validate:"min=0"`
	WidthIn         float64        `json:"width_in" validate:"min=0"`
	HeightIn        float64        `json:"height_in" validate:"min=0"`
	WeightLb        float64        `json:"weight_lb" validate:"min=0"`

	Capabilities CapabilitySet `json:"capabilities"`

	AutoStartPositions   []StartPosition `json:"auto_start_positions" validate:"unique,dive,oneof=observation net specimen"`
	AutoSampleCollection bool            `json:"auto_sample_collection"`
	AutoScoring          bool            `json:"auto_scoring"`
	AutoAscent           bool            `json:"auto_ascent"`

	Ratings       Ratings       `json:"ratings"`
	PreferredRole PreferredRole `json:"preferred_role" validate:"oneof=sampler scorer hybrid"`
	PreferredZone PreferredZone `json:"preferred_zone" validate:"oneof=observation net specimen mixed"`
	StrategyNotes string        `json:"strategy_notes,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}
