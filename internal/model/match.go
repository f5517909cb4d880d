package model

import "time"

// AllianceColor is the side a team played on in a match.
type AllianceColor string

const (
	AllianceRed  AllianceColor = "red"
	AllianceBlue AllianceColor = "blue"
)

// MatchResult is the outcome of a match from the scouted team's perspective.
// It feeds win-rate statistics only; it never contributes to the point total.
type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultTie  MatchResult = "tie"
	ResultLoss MatchResult = "loss"
)

// StartPosition is where a robot starts the autonomous phase.
type StartPosition string

const (
	StartObservation StartPosition = "observation"
	StartNet         StartPosition = "net"
	StartSpecimen    StartPosition = "specimen"
)

// AscentLevel is the tiered endgame climb achievement.
type AscentLevel string

const (
	AscentNone   AscentLevel = "none"
	AscentLevel1 AscentLevel = "level1"
	AscentLevel2 AscentLevel = "level2"
	AscentLevel3 AscentLevel = "level3"
)

// PhaseActions counts one phase's scoring actions. The auto and teleop
// phases share the same action set, so a MatchRecord carries two of these.
// SampleCollection is informational and worth zero points.
type PhaseActions struct {
	Parked           bool `json:"parked"`
	SampleCollection int  `json:"sample_collection" validate:"min=0"`
	NetZonePlacement int  `json:"net_zone_placement" validate:"min=0"`
	LowBasket        int  `json:"low_basket" validate:"min=0"`
	HighBasket       int  `json:"high_basket" validate:"min=0"`
	LowChamber       int  `json:"low_chamber" validate:"min=0"`
	HighChamber      int  `json:"high_chamber" validate:"min=0"`
}

// Ratings are 1-5 driver-observed robot performance scores.
type Ratings struct {
	Speed           int `json:"speed" validate:"min=1,max=5"`
	Reliability     int `json:"reliability" validate:"min=1,max=5"`
	Maneuverability int `json:"maneuverability" validate:"min=1,max=5"`
}

// MatchRecord is one team's observed performance in one match. ID and
// CreatedAt are assigned by the store at append time and are opaque to
// callers. Edits replace the whole record but preserve both.
type MatchRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	MatchNumber int           `json:"match_number" validate:"min=1"`
	TeamNumber  int           `json:"team_number" validate:"min=1"`
	Alliance    AllianceColor `json:"alliance" validate:"oneof=red blue"`
	Result      MatchResult   `json:"result" validate:"oneof=win tie loss"`

	AutoStart StartPosition `json:"auto_start" validate:"oneof=observation net specimen"`
	Auto      PhaseActions  `json:"auto"`
	Teleop    PhaseActions  `json:"teleop"`
	Ascent    AscentLevel   `json:"ascent" validate:"oneof=none level1 level2 level3"`

	Ratings Ratings `json:"ratings"`
	Notes   string  `json:"notes,omitempty"`
}

// ScoreBreakdown is the point decomposition of a single match observation,
// or (in a TeamSummary) the per-phase averages across matches. Auto holds
// the raw autonomous points; Total already includes the doubled figure.
// Bonus is the win/tie bonus, tracked separately and never part of Total.
type ScoreBreakdown struct {
	Auto    int `json:"auto"`
	Teleop  int `json:"teleop"`
	Endgame int `json:"endgame"`
	Bonus   int `json:"bonus"`
	Total   int `json:"total"`
}
