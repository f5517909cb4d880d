package export

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// WriteXLSX writes a three-sheet workbook: match records, pit records, and
// the ranking table.
func WriteXLSX(w io.Writer, snap Snapshot) error {
	f := xlsx.NewFile()

	if err := addMatchSheet(f, snap.Matches); err != nil {
		return err
	}
	if err := addPitSheet(f, snap.Pits); err != nil {
		return err
	}
	if err := addRankingSheet(f, snap.Rankings); err != nil {
		return err
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

func addMatchSheet(f *xlsx.File, matches []model.MatchRecord) error {
	sheet, err := f.AddSheet("Matches")
	if err != nil {
		return eris.Wrap(err, "export: add matches sheet")
	}

	addRow(sheet, matchCSVHeader...)
	for _, m := range matches {
		cells := []string{
			fmt.Sprint(m.MatchNumber),
			fmt.Sprint(m.TeamNumber),
			string(m.Alliance),
			string(m.Result),
			string(m.AutoStart),
		}
		cells = append(cells, phaseColumns(m.Auto)...)
		cells = append(cells, phaseColumns(m.Teleop)...)
		cells = append(cells,
			string(m.Ascent),
			fmt.Sprint(m.Ratings.Speed),
			fmt.Sprint(m.Ratings.Reliability),
			fmt.Sprint(m.Ratings.Maneuverability),
			m.Notes,
		)
		addRow(sheet, cells...)
	}
	return nil
}

func addPitSheet(f *xlsx.File, pits []model.PitRecord) error {
	sheet, err := f.AddSheet("Pits")
	if err != nil {
		return eris.Wrap(err, "export: add pits sheet")
	}

	addRow(sheet,
		"team_number", "team_name", "drivetrain", "length_in", "width_in",
		"height_in", "weight_lb", "collect_samples", "net_zone", "low_basket",
		"high_basket", "low_chamber", "high_chamber", "max_ascent",
		"preferred_role", "preferred_zone",
	)
	for _, p := range pits {
		addRow(sheet,
			fmt.Sprint(p.TeamNumber),
			p.TeamName,
			string(p.Drivetrain),
			fmt.Sprint(p.LengthIn),
			fmt.Sprint(p.WidthIn),
			fmt.Sprint(p.HeightIn),
			fmt.Sprint(p.WeightLb),
			fmt.Sprint(p.Capabilities.CollectSamples),
			fmt.Sprint(p.Capabilities.NetZone),
			fmt.Sprint(p.Capabilities.LowBasket),
			fmt.Sprint(p.Capabilities.HighBasket),
			fmt.Sprint(p.Capabilities.LowChamber),
			fmt.Sprint(p.Capabilities.HighChamber),
			string(p.Capabilities.MaxAscent),
			string(p.PreferredRole),
			string(p.PreferredZone),
		)
	}
	return nil
}

func addRankingSheet(f *xlsx.File, rankings []model.TeamSummary) error {
	sheet, err := f.AddSheet("Rankings")
	if err != nil {
		return eris.Wrap(err, "export: add rankings sheet")
	}

	addRow(sheet,
		"team_number", "name", "matches", "avg_auto", "avg_teleop",
		"avg_endgame", "avg_total", "win_rate", "speed", "reliability",
		"maneuverability", "has_pit_data",
	)
	for _, t := range rankings {
		addRow(sheet,
			fmt.Sprint(t.TeamNumber),
			t.Name,
			fmt.Sprint(t.MatchCount),
			fmt.Sprint(t.Avg.Auto),
			fmt.Sprint(t.Avg.Teleop),
			fmt.Sprint(t.Avg.Endgame),
			fmt.Sprint(t.Avg.Total),
			fmt.Sprintf("%.0f%%", t.WinRate),
			fmt.Sprint(t.Ratings.Speed),
			fmt.Sprint(t.Ratings.Reliability),
			fmt.Sprint(t.Ratings.Maneuverability),
			fmt.Sprint(t.HasPitData),
		)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}
