package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "scout.db", cfg.Store.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Analysis.MinAllianceTeams)
	assert.Equal(t, 1024, cfg.Analysis.ScoreCacheSize)
	assert.Equal(t, 8, cfg.Seed.Teams)
	assert.Equal(t, 5, cfg.Seed.MatchesPerTeam)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCOUT_STORE_PATH", "/tmp/other.db")
	t.Setenv("SCOUT_SERVER_PORT", "9999")
	t.Setenv("SCOUT_ANALYSIS_MIN_ALLIANCE_TEAMS", "4")
	t.Setenv("SCOUT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Analysis.MinAllianceTeams)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	assert.Error(t, InitLogger(LogConfig{Level: "loud", Format: "json"}))
}
