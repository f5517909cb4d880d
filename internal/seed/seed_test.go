package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedHandling(t *testing.T) {
	assert.Equal(t, int64(42), New(42).Seed())
	assert.NotZero(t, New(0).Seed(), "zero picks a time-based seed")
}

func TestDatasetDeterministic(t *testing.T) {
	m1, p1 := New(7).Dataset(8, 5)
	m2, p2 := New(7).Dataset(8, 5)

	assert.Equal(t, m1, m2)
	assert.Equal(t, p1, p2)
}

func TestDatasetShape(t *testing.T) {
	matches, pits := New(7).Dataset(8, 5)

	assert.Len(t, matches, 40)
	assert.Len(t, pits, 6, "three of every four teams get a pit record")

	teams := map[int]bool{}
	for _, m := range matches {
		teams[m.TeamNumber] = true
	}
	assert.Len(t, teams, 8, "team numbers are distinct")
}

func TestGeneratedRecordsAreValid(t *testing.T) {
	matches, pits := New(99).Dataset(12, 4)

	for i := range matches {
		require.NoError(t, matches[i].Validate(), "match %d", i)
	}
	for i := range pits {
		require.NoError(t, pits[i].Validate(), "pit %d", i)
		assert.NotEmpty(t, pits[i].TeamName)
	}
}
