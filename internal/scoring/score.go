// Package scoring converts raw match observations into point breakdowns
// under the season's rule set. Scoring is a pure, total function over
// validated records; the caller-owned Cache exists only to avoid re-scoring
// unchanged records across repeated aggregations.
package scoring

import "github.com/gearbox-works/scout-cli/internal/model"

// Point values for a single scoring action. Sample collection is tracked
// on the record but worth nothing.
const (
	pointsPark        = 3
	pointsNetZone     = 2
	pointsLowBasket   = 4
	pointsHighBasket  = 8
	pointsLowChamber  = 6
	pointsHighChamber = 10
)

// Ascent points by level.
var ascentPoints = map[model.AscentLevel]int{
	model.AscentNone:   0,
	model.AscentLevel1: 3,
	model.AscentLevel2: 15,
	model.AscentLevel3: 30,
}

// Score computes the point breakdown for one match record.
//
// The returned Auto is the raw autonomous score; the total doubles it
// (total = auto*2 + teleop + endgame). The win/tie bonus is reported in
// Bonus but never added to Total. Input is assumed validated upstream.
func Score(m model.MatchRecord) model.ScoreBreakdown {
	auto := phasePoints(m.Auto)
	teleop := phasePoints(m.Teleop)
	endgame := ascentPoints[m.Ascent]

	bonus := 0
	switch m.Result {
	case model.ResultWin:
		bonus = 2
	case model.ResultTie:
		bonus = 1
	}

	return model.ScoreBreakdown{
		Auto:    auto,
		Teleop:  teleop,
		Endgame: endgame,
		Bonus:   bonus,
		Total:   auto*2 + teleop + endgame,
	}
}

func phasePoints(p model.PhaseActions) int {
	score := 0
	if p.Parked {
		score += pointsPark
	}
	score += p.NetZonePlacement * pointsNetZone
	score += p.LowBasket * pointsLowBasket
	score += p.HighBasket * pointsHighBasket
	score += p.LowChamber * pointsLowChamber
	score += p.HighChamber * pointsHighChamber
	return score
}
