// Package export serializes scouting records and rankings for sharing
// between scouting laptops: JSON and YAML carry the full snapshot, CSV
// carries match records in a shape `scout import` accepts back, and XLSX
// produces a workbook for spreadsheet users.
package export

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", eris.Errorf("export: unknown format %q", s)
	}
}

// Snapshot is the exportable view of the store plus derived rankings.
type Snapshot struct {
	Matches  []model.MatchRecord `json:"matches" yaml:"matches"`
	Pits     []model.PitRecord   `json:"pits" yaml:"pits"`
	Rankings []model.TeamSummary `json:"rankings" yaml:"rankings"`
}

// Write encodes the snapshot to w in the given format.
func Write(w io.Writer, snap Snapshot, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(snap), "export: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(snap); err != nil {
			return eris.Wrap(err, "export: encode yaml")
		}
		return eris.Wrap(enc.Close(), "export: close yaml encoder")
	case FormatCSV:
		return WriteMatchCSV(w, snap.Matches)
	case FormatXLSX:
		return WriteXLSX(w, snap)
	default:
		return eris.Errorf("export: unknown format %q", format)
	}
}
