package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gearbox-works/scout-cli/internal/model"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, "1b9d6bcd", shortID("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "", shortID(""))
}

func TestCapabilityList(t *testing.T) {
	assert.Equal(t, "none", capabilityList(model.CapabilitySet{}))

	got := capabilityList(model.CapabilitySet{
		CollectSamples: true,
		HighBasket:     true,
		HighChamber:    true,
	})
	assert.Equal(t, "samples, high basket, high chamber", got)
}

func TestFormatTeamTable(t *testing.T) {
	var buf bytes.Buffer
	formatTeamTable(&buf, []model.TeamSummary{
		{
			TeamNumber: 1234,
			Name:       "Gear Grinders",
			MatchCount: 3,
			Avg:        model.ScoreBreakdown{Auto: 19, Teleop: 12, Endgame: 15, Total: 65},
			WinRate:    67,
			Ratings:    model.Ratings{Speed: 4, Reliability: 3, Maneuverability: 5},
			HasPitData: true,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Gear Grinders")
	assert.Contains(t, out, "65")
	assert.Contains(t, out, "67%")
	assert.Contains(t, out, "yes")
}

func TestFormatComparisonOneColumnPerTeam(t *testing.T) {
	a := model.TeamSummary{TeamNumber: 100, Name: "Alpha", Avg: model.ScoreBreakdown{Total: 40}}
	b := model.TeamSummary{TeamNumber: 200, Name: "Beta", Avg: model.ScoreBreakdown{Total: 55}}

	var buf bytes.Buffer
	formatComparison(&buf, []model.TeamSummary{a, b})

	out := buf.String()
	assert.Contains(t, out, "100 Alpha")
	assert.Contains(t, out, "200 Beta")
	assert.Contains(t, out, "Avg total")
	assert.Contains(t, out, "Max ascent")
}

func TestFormatCandidates(t *testing.T) {
	var buf bytes.Buffer
	formatCandidates(&buf, []model.AllianceCandidate{{
		Name:        "Highest Scoring Alliance",
		Description: "This alliance has the highest combined match score potential.",
		Teams: []model.TeamSummary{
			{TeamNumber: 100, Name: "Alpha", Avg: model.ScoreBreakdown{Total: 40}},
		},
		Combined: model.ScoreBreakdown{Total: 40},
		Coverage: 50,
	}})

	out := buf.String()
	assert.Contains(t, out, "Highest Scoring Alliance")
	assert.Contains(t, out, "- 100 Alpha (avg total 40)")
	assert.Contains(t, out, "Coverage: 50%")
}
