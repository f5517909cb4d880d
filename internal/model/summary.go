package model

import "fmt"

// TeamSummary is the derived rollup of a team's match records and (at most
// one) pit record. It is recomputed from a full snapshot on every read and
// never stored. Averages use a single rounding mode (round half up) so
// repeated aggregation of the same inputs is bit-identical.
//
// Ratings precedence: when MatchCount > 0 the ratings are per-match
// averages, even if pit data exists; the pit record's ratings are only a
// fallback for teams with zero matches. Capabilities always come from the
// pit record and are never inferred from match data.
type TeamSummary struct {
	TeamNumber int    `json:"team_number"`
	Name       string `json:"name"`
	MatchCount int    `json:"match_count"`

	Avg     ScoreBreakdown `json:"avg"`
	WinRate float64        `json:"win_rate"`

	Capabilities CapabilitySet `json:"capabilities"`
	Ratings      Ratings       `json:"ratings"`
	HasPitData   bool          `json:"has_pit_data"`
}

// SynthesizedName is the display name for a team with no pit record.
func SynthesizedName(teamNumber int) string {
	return fmt.Sprintf("Team %d", teamNumber)
}

// AllianceCandidate is a proposed 3-team alliance evaluated as a unit.
// Combined sums the members' average breakdowns (the auto figure is not
// doubled again; each member's total already accounts for it). Coverage is
// the percent of the six scoring capabilities held by at least one member.
type AllianceCandidate struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Teams       []TeamSummary  `json:"teams"`
	Combined    ScoreBreakdown `json:"combined"`
	Coverage    float64        `json:"coverage"`
}
