package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-works/scout-cli/internal/model"
)

func summary(team int, auto, teleop, endgame int, caps model.CapabilitySet) model.TeamSummary {
	return model.TeamSummary{
		TeamNumber: team,
		Name:       model.SynthesizedName(team),
		MatchCount: 1,
		Avg: model.ScoreBreakdown{
			Auto:    auto,
			Teleop:  teleop,
			Endgame: endgame,
			Total:   auto*2 + teleop + endgame,
		},
		Capabilities: caps,
	}
}

func roster(n int) []model.TeamSummary {
	teams := make([]model.TeamSummary, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, summary(100+i, 10+i, 20, 5, model.CapabilitySet{MaxAscent: model.AscentNone}))
	}
	return teams
}

func TestRecommendGating(t *testing.T) {
	r := NewRecommender(0)

	assert.Nil(t, r.Recommend(roster(5)), "5 teams is below the gate")
	assert.Len(t, r.Recommend(roster(6)), 3, "6 teams yields exactly 3 candidates")
}

func TestRecommendHighestScoring(t *testing.T) {
	teams := roster(6) // totals ascend with team number; 105 is strongest

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)

	best := got[0]
	assert.Equal(t, "Highest Scoring Alliance", best.Name)
	require.Len(t, best.Teams, 3)
	assert.Equal(t, 105, best.Teams[0].TeamNumber)
	assert.Equal(t, 104, best.Teams[1].TeamNumber)
	assert.Equal(t, 103, best.Teams[2].TeamNumber)

	wantTotal := teams[5].Avg.Total + teams[4].Avg.Total + teams[3].Avg.Total
	assert.Equal(t, wantTotal, best.Combined.Total, "summed, not re-doubled")
}

func TestRecommendHighestScoringStableOnTies(t *testing.T) {
	teams := roster(6)
	for i := range teams {
		teams[i].Avg = model.ScoreBreakdown{Total: 50}
	}

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)
	// All tied: the stable sort keeps enumeration order.
	assert.Equal(t, 100, got[0].Teams[0].TeamNumber)
	assert.Equal(t, 101, got[0].Teams[1].TeamNumber)
	assert.Equal(t, 102, got[0].Teams[2].TeamNumber)
}

func TestRecommendBalancedSpecialists(t *testing.T) {
	none := model.CapabilitySet{MaxAscent: model.AscentNone}
	teams := []model.TeamSummary{
		summary(101, 30, 5, 0, none),  // auto specialist
		summary(102, 29, 40, 0, none), // teleop specialist
		summary(103, 0, 39, 25, none), // endgame specialist
		summary(104, 1, 1, 24, none),
		summary(105, 1, 1, 1, none),
		summary(106, 1, 1, 1, none),
	}

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)

	balanced := got[1]
	assert.Equal(t, "Balanced Strategy Alliance", balanced.Name)
	require.Len(t, balanced.Teams, 3)
	assert.Equal(t, 101, balanced.Teams[0].TeamNumber)
	assert.Equal(t, 102, balanced.Teams[1].TeamNumber, "already-picked auto specialist is excluded")
	assert.Equal(t, 103, balanced.Teams[2].TeamNumber)
}

func TestRecommendBalancedTieBreak(t *testing.T) {
	none := model.CapabilitySet{MaxAscent: model.AscentNone}
	teams := []model.TeamSummary{
		summary(500, 10, 1, 1, none),
		summary(200, 10, 1, 1, none), // same auto average, lower number wins
		summary(300, 1, 10, 1, none),
		summary(400, 1, 1, 10, none),
		summary(600, 1, 1, 1, none),
		summary(700, 1, 1, 1, none),
	}

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)
	assert.Equal(t, 200, got[1].Teams[0].TeamNumber)
}

func TestCoverage(t *testing.T) {
	a := summary(1, 0, 0, 0, model.CapabilitySet{CollectSamples: true, NetZone: true, MaxAscent: model.AscentNone})
	b := summary(2, 0, 0, 0, model.CapabilitySet{LowBasket: true, MaxAscent: model.AscentNone})
	c := summary(3, 0, 0, 0, model.CapabilitySet{MaxAscent: model.AscentNone})

	assert.InDelta(t, 50.0, Coverage([]model.TeamSummary{a, b, c}), 0.001)

	t.Run("overlap is not double counted", func(t *testing.T) {
		d := summary(4, 0, 0, 0, model.CapabilitySet{CollectSamples: true, MaxAscent: model.AscentNone})
		assert.InDelta(t, 50.0, Coverage([]model.TeamSummary{a, b, d}), 0.001)
	})
}

func TestRecommendMostVersatile(t *testing.T) {
	none := model.CapabilitySet{MaxAscent: model.AscentNone}
	teams := []model.TeamSummary{
		summary(101, 50, 50, 20, none), // high scorers, no capabilities
		summary(102, 50, 50, 20, none),
		summary(103, 50, 50, 20, none),
		summary(104, 0, 0, 0, model.CapabilitySet{CollectSamples: true, NetZone: true, MaxAscent: model.AscentNone}),
		summary(105, 0, 0, 0, model.CapabilitySet{LowBasket: true, HighBasket: true, MaxAscent: model.AscentNone}),
		summary(106, 0, 0, 0, model.CapabilitySet{LowChamber: true, HighChamber: true, MaxAscent: model.AscentNone}),
	}

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)

	versatile := got[2]
	assert.Equal(t, "Most Versatile Alliance", versatile.Name)
	assert.InDelta(t, 100.0, versatile.Coverage, 0.001)
	numbers := []int{
		versatile.Teams[0].TeamNumber,
		versatile.Teams[1].TeamNumber,
		versatile.Teams[2].TeamNumber,
	}
	assert.Equal(t, []int{104, 105, 106}, numbers)
}

func TestRecommendMostVersatileTieBrokenByScore(t *testing.T) {
	caps := model.CapabilitySet{CollectSamples: true, MaxAscent: model.AscentNone}
	none := model.CapabilitySet{MaxAscent: model.AscentNone}
	teams := []model.TeamSummary{
		summary(101, 1, 0, 0, caps),
		summary(102, 1, 0, 0, none),
		summary(103, 1, 0, 0, none),
		summary(104, 40, 0, 0, caps), // same coverage everywhere; these score highest
		summary(105, 40, 0, 0, none),
		summary(106, 40, 0, 0, none),
	}

	got := NewRecommender(0).Recommend(teams)
	require.Len(t, got, 3)

	versatile := got[2]
	numbers := []int{
		versatile.Teams[0].TeamNumber,
		versatile.Teams[1].TeamNumber,
		versatile.Teams[2].TeamNumber,
	}
	assert.Equal(t, []int{104, 105, 106}, numbers)
}

func TestRecommendDoesNotMutateInput(t *testing.T) {
	teams := roster(6)
	orderBefore := make([]int, len(teams))
	for i, tm := range teams {
		orderBefore[i] = tm.TeamNumber
	}

	NewRecommender(0).Recommend(teams)

	for i, tm := range teams {
		assert.Equal(t, orderBefore[i], tm.TeamNumber)
	}
}
