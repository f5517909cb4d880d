package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-works/scout-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := NewSQLite(filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testMatchRecord(team, match int) model.MatchRecord {
	return model.MatchRecord{
		MatchNumber: match,
		TeamNumber:  team,
		Alliance:    model.AllianceRed,
		Result:      model.ResultWin,
		AutoStart:   model.StartNet,
		Auto:        model.PhaseActions{HighBasket: 2},
		Teleop:      model.PhaseActions{LowBasket: 3},
		Ascent:      model.AscentLevel2,
		Ratings:     model.Ratings{Speed: 4, Reliability: 3, Maneuverability: 5},
		Notes:       "consistent cycles",
	}
}

func testPitRecord(team int) model.PitRecord {
	return model.PitRecord{
		TeamNumber: team,
		TeamName:   "Gear Grinders",
		Drivetrain: model.DrivetrainMecanum,
		Capabilities: model.CapabilitySet{
			CollectSamples: true,
			HighBasket:     true,
			MaxAscent:      model.AscentLevel2,
		},
		Ratings: model.Ratings{Speed: 3, Reliability: 4, Maneuverability: 3},
	}
}

func TestMatchRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddMatch(ctx, testMatchRecord(1234, 7))
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	got, err := st.GetMatch(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, 1234, got.TeamNumber)
	assert.Equal(t, 7, got.MatchNumber)
	assert.Equal(t, model.AscentLevel2, got.Ascent)
	assert.Equal(t, "consistent cycles", got.Notes)
}

func TestGetMatchNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetMatch(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListMatchesFilters(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, rec := range []model.MatchRecord{
		testMatchRecord(100, 1),
		testMatchRecord(100, 2),
		testMatchRecord(200, 1),
	} {
		_, err := st.AddMatch(ctx, rec)
		require.NoError(t, err)
	}

	t.Run("all", func(t *testing.T) {
		got, err := st.ListMatches(ctx, MatchFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("by team", func(t *testing.T) {
		got, err := st.ListMatches(ctx, MatchFilter{TeamNumber: 100})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, rec := range got {
			assert.Equal(t, 100, rec.TeamNumber)
		}
	})

	t.Run("by match number", func(t *testing.T) {
		got, err := st.ListMatches(ctx, MatchFilter{MatchNumber: 1})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := st.ListMatches(ctx, MatchFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestReplaceMatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddMatch(ctx, testMatchRecord(1234, 7))
	require.NoError(t, err)

	updated := testMatchRecord(1234, 7)
	updated.Result = model.ResultLoss
	updated.Teleop.HighBasket = 6
	updated.Notes = ""

	got, err := st.ReplaceMatch(ctx, added.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID, "id survives the replace")
	assert.Equal(t, added.CreatedAt, got.CreatedAt, "creation time survives the replace")
	assert.Equal(t, model.ResultLoss, got.Result)

	stored, err := st.GetMatch(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.Teleop.HighBasket)
	assert.Empty(t, stored.Notes, "replace is whole-record, not a merge")
}

func TestReplaceMatchNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.ReplaceMatch(context.Background(), "no-such-id", testMatchRecord(1, 1))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteMatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddMatch(ctx, testMatchRecord(1234, 7))
	require.NoError(t, err)

	require.NoError(t, st.DeleteMatch(ctx, added.ID))

	_, err = st.GetMatch(ctx, added.ID)
	assert.True(t, IsNotFound(err))

	err = st.DeleteMatch(ctx, added.ID)
	assert.True(t, IsNotFound(err), "second delete reports not found")
}

func TestClearMatchesLeavesPits(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.AddMatch(ctx, testMatchRecord(100, 1))
	require.NoError(t, err)
	_, err = st.AddPit(ctx, testPitRecord(100))
	require.NoError(t, err)

	require.NoError(t, st.ClearMatches(ctx))

	matches, err := st.ListMatches(ctx, MatchFilter{})
	require.NoError(t, err)
	assert.Empty(t, matches)

	pits, err := st.ListPits(ctx, PitFilter{})
	require.NoError(t, err)
	assert.Len(t, pits, 1)
}

func TestPitRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	added, err := st.AddPit(ctx, testPitRecord(1234))
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	got, err := st.GetPit(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gear Grinders", got.TeamName)
	assert.True(t, got.Capabilities.HighBasket)
	assert.Equal(t, model.AscentLevel2, got.Capabilities.MaxAscent)
}

func TestPitsAreAppendOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.AddPit(ctx, testPitRecord(1234))
	require.NoError(t, err)
	second, err := st.AddPit(ctx, testPitRecord(1234))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := st.ListPits(ctx, PitFilter{TeamNumber: 1234})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClearPits(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.AddPit(ctx, testPitRecord(100))
	require.NoError(t, err)

	require.NoError(t, st.ClearPits(ctx))

	pits, err := st.ListPits(ctx, PitFilter{})
	require.NoError(t, err)
	assert.Empty(t, pits)
}
