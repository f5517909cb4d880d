package analysis

import (
	"sort"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// DefaultMinAllianceTeams is the smallest roster the recommender will work
// with. Below it the specialist picks degenerate and the combination search
// has too little signal, so the recommender declines to compute.
const DefaultMinAllianceTeams = 6

// Recommender proposes 3-team alliance candidates under three strategies:
// highest combined score, balanced phase specialists, and best capability
// coverage. The coverage search enumerates every 3-team combination, which
// is cubic in roster size; fine for the tens of teams at a single event,
// and a known scaling limit beyond that.
type Recommender struct {
	minTeams int
}

// NewRecommender creates a Recommender gated at minTeams scouted teams.
// A non-positive value uses DefaultMinAllianceTeams.
func NewRecommender(minTeams int) *Recommender {
	if minTeams <= 0 {
		minTeams = DefaultMinAllianceTeams
	}
	return &Recommender{minTeams: minTeams}
}

// MinTeams reports the roster size gate.
func (r *Recommender) MinTeams() int { return r.minTeams }

// Recommend returns the three alliance candidates, or nil when fewer than
// the minimum number of teams have been scouted. The input slice is not
// modified; its order is the enumeration order tie-breaks refer to.
func (r *Recommender) Recommend(teams []model.TeamSummary) []model.AllianceCandidate {
	if len(teams) < r.minTeams {
		return nil
	}

	return []model.AllianceCandidate{
		r.highestScoring(teams),
		r.balanced(teams),
		r.mostVersatile(teams),
	}
}

func (r *Recommender) highestScoring(teams []model.TeamSummary) model.AllianceCandidate {
	ranked := make([]model.TeamSummary, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Avg.Total > ranked[j].Avg.Total
	})

	return newCandidate(
		"Highest Scoring Alliance",
		"This alliance has the highest combined match score potential.",
		ranked[:3],
	)
}

// balanced picks one specialist per phase: the best auto team, then the
// best teleop team among the rest, then the best endgame team among those
// remaining. Per-phase ties go to the lowest team number; the original
// behavior left this unspecified, so the tie-break is a documented choice
// here rather than inherited.
func (r *Recommender) balanced(teams []model.TeamSummary) model.AllianceCandidate {
	picked := make(map[int]bool, 3)

	pick := func(score func(model.TeamSummary) int) model.TeamSummary {
		var best model.TeamSummary
		found := false
		for _, t := range teams {
			if picked[t.TeamNumber] {
				continue
			}
			if !found ||
				score(t) > score(best) ||
				(score(t) == score(best) && t.TeamNumber < best.TeamNumber) {
				best = t
				found = true
			}
		}
		picked[best.TeamNumber] = true
		return best
	}

	members := []model.TeamSummary{
		pick(func(t model.TeamSummary) int { return t.Avg.Auto }),
		pick(func(t model.TeamSummary) int { return t.Avg.Teleop }),
		pick(func(t model.TeamSummary) int { return t.Avg.Endgame }),
	}

	return newCandidate(
		"Balanced Strategy Alliance",
		"This alliance combines specialists in autonomous, teleop, and endgame phases.",
		members,
	)
}

// mostVersatile exhaustively scores every 3-team combination by capability
// coverage, breaking ties by summed total score, then by first-found order
// under the (i,j,k) enumeration.
func (r *Recommender) mostVersatile(teams []model.TeamSummary) model.AllianceCandidate {
	var best []model.TeamSummary
	bestCoverage := -1.0
	bestScore := -1

	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			for k := j + 1; k < len(teams); k++ {
				combo := []model.TeamSummary{teams[i], teams[j], teams[k]}
				cov := Coverage(combo)
				score := combo[0].Avg.Total + combo[1].Avg.Total + combo[2].Avg.Total
				if cov > bestCoverage || (cov == bestCoverage && score > bestScore) {
					best = combo
					bestCoverage = cov
					bestScore = score
				}
			}
		}
	}

	return newCandidate(
		"Most Versatile Alliance",
		"This alliance covers the most game elements and scoring opportunities.",
		best,
	)
}

// Coverage is the percentage of the six scoring capabilities held by at
// least one team in the group.
func Coverage(teams []model.TeamSummary) float64 {
	var union [6]bool
	for _, t := range teams {
		flags := t.Capabilities.Flags()
		for i, f := range flags {
			if f {
				union[i] = true
			}
		}
	}

	covered := 0
	for _, f := range union {
		if f {
			covered++
		}
	}
	return float64(covered) / float64(len(union)) * 100
}

func newCandidate(name, description string, members []model.TeamSummary) model.AllianceCandidate {
	teams := make([]model.TeamSummary, len(members))
	copy(teams, members)

	var combined model.ScoreBreakdown
	for _, t := range teams {
		combined.Auto += t.Avg.Auto
		combined.Teleop += t.Avg.Teleop
		combined.Endgame += t.Avg.Endgame
		combined.Total += t.Avg.Total
	}

	return model.AllianceCandidate{
		Name:        name,
		Description: description,
		Teams:       teams,
		Combined:    combined,
		Coverage:    Coverage(teams),
	}
}
