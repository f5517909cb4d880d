// Package analysis rolls raw scouting records up into team summaries,
// alliance recommendations, and sortable ranking views. Everything here is
// a pure projection over a full snapshot of the record collections: nothing
// is mutated, and recomputing on unchanged inputs yields identical output.
package analysis

import (
	"sort"

	"github.com/gearbox-works/scout-cli/internal/model"
	"github.com/gearbox-works/scout-cli/internal/scoring"
)

// Aggregator folds match and pit records into TeamSummaries. It owns the
// score cache so repeated aggregations over the same snapshot do not
// re-score unchanged records.
type Aggregator struct {
	cache *scoring.Cache
}

// NewAggregator creates an Aggregator. If cache is nil a default-sized one
// is created internally.
func NewAggregator(cache *scoring.Cache) *Aggregator {
	if cache == nil {
		cache = scoring.NewCache(1024)
	}
	return &Aggregator{cache: cache}
}

// Summarize computes the TeamSummary for one team number from full record
// snapshots. A team present in neither collection yields an all-zero
// summary with a synthesized name.
//
// Averages round half up. Ratings come from match averages whenever at
// least one match exists; the pit record's ratings apply only to teams
// with zero matches. Capabilities come from the pit record alone.
func (a *Aggregator) Summarize(teamNumber int, matches []model.MatchRecord, pits []model.PitRecord) model.TeamSummary {
	var teamMatches []model.MatchRecord
	for _, m := range matches {
		if m.TeamNumber == teamNumber {
			teamMatches = append(teamMatches, m)
		}
	}

	// Pits are append-only; the last matching record is the latest visit.
	var pit *model.PitRecord
	for i := range pits {
		if pits[i].TeamNumber == teamNumber {
			pit = &pits[i]
		}
	}

	summary := model.TeamSummary{
		TeamNumber: teamNumber,
		Name:       model.SynthesizedName(teamNumber),
		MatchCount: len(teamMatches),
		Capabilities: model.CapabilitySet{
			MaxAscent: model.AscentNone,
		},
	}

	if pit != nil {
		summary.HasPitData = true
		summary.Name = pit.TeamName
		summary.Capabilities = pit.Capabilities
	}

	if len(teamMatches) == 0 {
		if pit != nil {
			summary.Ratings = pit.Ratings
		}
		return summary
	}

	n := len(teamMatches)
	var auto, teleop, endgame, total int
	var wins int
	var speed, reliability, maneuverability int
	for _, m := range teamMatches {
		bd := a.cache.Score(m)
		auto += bd.Auto
		teleop += bd.Teleop
		endgame += bd.Endgame
		total += bd.Total
		if m.Result == model.ResultWin {
			wins++
		}
		speed += m.Ratings.Speed
		reliability += m.Ratings.Reliability
		maneuverability += m.Ratings.Maneuverability
	}

	summary.Avg = model.ScoreBreakdown{
		Auto:    roundAvg(auto, n),
		Teleop:  roundAvg(teleop, n),
		Endgame: roundAvg(endgame, n),
		Total:   roundAvg(total, n),
	}
	summary.WinRate = float64(wins) / float64(n) * 100
	summary.Ratings = model.Ratings{
		Speed:           roundAvg(speed, n),
		Reliability:     roundAvg(reliability, n),
		Maneuverability: roundAvg(maneuverability, n),
	}

	return summary
}

// SummarizeAll summarizes every team present in either collection, ordered
// by ascending team number. The ordering is the enumeration order later
// stable sorts and tie-breaks refer back to.
func (a *Aggregator) SummarizeAll(matches []model.MatchRecord, pits []model.PitRecord) []model.TeamSummary {
	seen := make(map[int]bool)
	var numbers []int
	for _, m := range matches {
		if !seen[m.TeamNumber] {
			seen[m.TeamNumber] = true
			numbers = append(numbers, m.TeamNumber)
		}
	}
	for _, p := range pits {
		if !seen[p.TeamNumber] {
			seen[p.TeamNumber] = true
			numbers = append(numbers, p.TeamNumber)
		}
	}
	sort.Ints(numbers)

	summaries := make([]model.TeamSummary, 0, len(numbers))
	for _, n := range numbers {
		summaries = append(summaries, a.Summarize(n, matches, pits))
	}
	return summaries
}

// roundAvg is sum/count rounded half up. Inputs are non-negative.
func roundAvg(sum, count int) int {
	if count == 0 {
		return 0
	}
	return (sum + count/2) / count
}
