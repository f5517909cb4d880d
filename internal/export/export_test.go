package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/gearbox-works/scout-cli/internal/model"
)

func sampleMatch(team, match int) model.MatchRecord {
	return model.MatchRecord{
		MatchNumber: match,
		TeamNumber:  team,
		Alliance:    model.AllianceRed,
		Result:      model.ResultWin,
		AutoStart:   model.StartNet,
		Auto:        model.PhaseActions{Parked: true, HighBasket: 2, SampleCollection: 1},
		Teleop:      model.PhaseActions{LowBasket: 3, HighChamber: 1},
		Ascent:      model.AscentLevel2,
		Ratings:     model.Ratings{Speed: 4, Reliability: 3, Maneuverability: 5},
		Notes:       "fast cycles, weak defense",
	}
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		Matches: []model.MatchRecord{sampleMatch(1234, 1), sampleMatch(5678, 1)},
		Pits: []model.PitRecord{{
			TeamNumber:    1234,
			TeamName:      "Gear Grinders",
			Drivetrain:    model.DrivetrainMecanum,
			Capabilities:  model.CapabilitySet{HighBasket: true, MaxAscent: model.AscentLevel2},
			Ratings:       model.Ratings{Speed: 3, Reliability: 4, Maneuverability: 3},
			PreferredRole: model.RoleScorer,
			PreferredZone: model.ZoneNet,
		}},
		Rankings: []model.TeamSummary{{
			TeamNumber: 1234,
			Name:       "Gear Grinders",
			MatchCount: 2,
			Avg:        model.ScoreBreakdown{Auto: 19, Teleop: 12, Endgame: 15, Total: 65},
			WinRate:    50,
			HasPitData: true,
		}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: " YAML ", want: FormatYAML},
		{in: "csv", want: FormatCSV},
		{in: "XLSX", want: FormatXLSX},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), FormatJSON))

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Matches, 2)
	assert.Len(t, decoded.Pits, 1)
	assert.Equal(t, 65, decoded.Rankings[0].Avg.Total)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), FormatYAML))

	var decoded Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Matches, 2)
	assert.Equal(t, "Gear Grinders", decoded.Pits[0].TeamName)
}

func TestMatchCSVRoundTrip(t *testing.T) {
	in := []model.MatchRecord{sampleMatch(1234, 1), sampleMatch(5678, 2)}
	in[0].Notes = "notes, with commas \"and quotes\""

	var buf bytes.Buffer
	require.NoError(t, WriteMatchCSV(&buf, in))

	got, err := ReadMatchCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, in[0].Notes, got[0].Notes)
	assert.Equal(t, in[0].Auto, got[0].Auto)
	assert.Equal(t, in[1].Teleop, got[1].Teleop)
	assert.Equal(t, in[1].Ascent, got[1].Ascent)
	assert.Equal(t, in[1].Ratings, got[1].Ratings)
	assert.Empty(t, got[0].ID, "ids are not carried through csv")
}

func TestReadMatchCSVRejectsBadRows(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadMatchCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("wrong column count", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMatchCSV(&buf, nil))
		buf.WriteString("1,1234,red\n")

		_, err := ReadMatchCSV(&buf)
		assert.Error(t, err)
	})

	t.Run("invalid value reports line number", func(t *testing.T) {
		var buf bytes.Buffer
		bad := sampleMatch(1234, 1)
		bad.Ratings.Speed = 9
		require.NoError(t, WriteMatchCSV(&buf, []model.MatchRecord{sampleMatch(1, 1), bad}))

		_, err := ReadMatchCSV(&buf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("non-numeric counter", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMatchCSV(&buf, []model.MatchRecord{sampleMatch(1, 1)}))
		mangled := strings.Replace(buf.String(), "net,true", "net,maybe", 1)

		_, err := ReadMatchCSV(strings.NewReader(mangled))
		assert.Error(t, err)
	})
}

func TestWriteXLSX(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, FormatXLSX))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, f.Sheets, 3)

	matches := f.Sheet["Matches"]
	require.NotNil(t, matches)
	assert.Len(t, matches.Rows, len(snap.Matches)+1)
	assert.Equal(t, "match_number", matches.Rows[0].Cells[0].Value)

	pits := f.Sheet["Pits"]
	require.NotNil(t, pits)
	assert.Len(t, pits.Rows, len(snap.Pits)+1)
	assert.Equal(t, "Gear Grinders", pits.Rows[1].Cells[1].Value)

	rankings := f.Sheet["Rankings"]
	require.NotNil(t, rankings)
	assert.Equal(t, "65", rankings.Rows[1].Cells[6].Value)
}
