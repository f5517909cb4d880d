package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// SortKey names a TeamSummary field a ranking can be ordered by.
type SortKey string

const (
	SortByTeamNumber      SortKey = "team"
	SortByName            SortKey = "name"
	SortByMatchCount      SortKey = "matches"
	SortByAuto            SortKey = "auto"
	SortByTeleop          SortKey = "teleop"
	SortByEndgame         SortKey = "endgame"
	SortByTotal           SortKey = "total"
	SortByWinRate         SortKey = "winrate"
	SortBySpeed           SortKey = "speed"
	SortByReliability     SortKey = "reliability"
	SortByManeuverability SortKey = "maneuverability"
)

var sortKeys = map[SortKey]bool{
	SortByTeamNumber:      true,
	SortByName:            true,
	SortByMatchCount:      true,
	SortByAuto:            true,
	SortByTeleop:          true,
	SortByEndgame:         true,
	SortByTotal:           true,
	SortByWinRate:         true,
	SortBySpeed:           true,
	SortByReliability:     true,
	SortByManeuverability: true,
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !sortKeys[key] {
		return "", eris.Errorf("analysis: unknown sort key %q", s)
	}
	return key, nil
}

// MaxCompareTeams bounds a side-by-side comparison.
const MaxCompareTeams = 4

// Rank returns a stably-sorted copy of teams ordered by key. Ties preserve
// the input order in both directions. The input is never mutated.
func Rank(teams []model.TeamSummary, key SortKey, descending bool) []model.TeamSummary {
	ranked := make([]model.TeamSummary, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return less(ranked[j], ranked[i], key)
		}
		return less(ranked[i], ranked[j], key)
	})
	return ranked
}

func less(a, b model.TeamSummary, key SortKey) bool {
	switch key {
	case SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case SortByMatchCount:
		return a.MatchCount < b.MatchCount
	case SortByAuto:
		return a.Avg.Auto < b.Avg.Auto
	case SortByTeleop:
		return a.Avg.Teleop < b.Avg.Teleop
	case SortByEndgame:
		return a.Avg.Endgame < b.Avg.Endgame
	case SortByTotal:
		return a.Avg.Total < b.Avg.Total
	case SortByWinRate:
		return a.WinRate < b.WinRate
	case SortBySpeed:
		return a.Ratings.Speed < b.Ratings.Speed
	case SortByReliability:
		return a.Ratings.Reliability < b.Ratings.Reliability
	case SortByManeuverability:
		return a.Ratings.Maneuverability < b.Ratings.Maneuverability
	default:
		return a.TeamNumber < b.TeamNumber
	}
}

// Filter returns the teams whose number contains query as a substring, or
// whose name contains it case-insensitively. An empty query returns a copy
// of the full input. Filtering happens before sorting.
func Filter(teams []model.TeamSummary, query string) []model.TeamSummary {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]model.TeamSummary, len(teams))
		copy(out, teams)
		return out
	}

	lower := strings.ToLower(query)
	out := make([]model.TeamSummary, 0, len(teams))
	for _, t := range teams {
		if strings.Contains(strconv.Itoa(t.TeamNumber), query) ||
			strings.Contains(strings.ToLower(t.Name), lower) {
			out = append(out, t)
		}
	}
	return out
}

// Compare selects 2 to MaxCompareTeams summaries by team number,
// preserving the requested order. Unknown team numbers are an error so a
// stale selection surfaces instead of silently shrinking the table.
func Compare(teams []model.TeamSummary, teamNumbers []int) ([]model.TeamSummary, error) {
	if len(teamNumbers) < 2 {
		return nil, eris.New("analysis: comparison needs at least 2 teams")
	}
	if len(teamNumbers) > MaxCompareTeams {
		return nil, eris.Errorf("analysis: comparison is limited to %d teams", MaxCompareTeams)
	}

	byNumber := make(map[int]model.TeamSummary, len(teams))
	for _, t := range teams {
		byNumber[t.TeamNumber] = t
	}

	out := make([]model.TeamSummary, 0, len(teamNumbers))
	for _, n := range teamNumbers {
		t, ok := byNumber[n]
		if !ok {
			return nil, eris.Errorf("analysis: team %d has no scouting data", n)
		}
		out = append(out, t)
	}
	return out, nil
}
