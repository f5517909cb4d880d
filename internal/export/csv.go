package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// matchCSVHeader is the column layout shared by export and import.
var matchCSVHeader = []string{
	"match_number", "team_number", "alliance", "result", "auto_start",
	"auto_parked", "auto_sample_collection", "auto_net_zone_placement",
	"auto_low_basket", "auto_high_basket", "auto_low_chamber", "auto_high_chamber",
	"teleop_parked", "teleop_sample_collection", "teleop_net_zone_placement",
	"teleop_low_basket", "teleop_high_basket", "teleop_low_chamber", "teleop_high_chamber",
	"ascent", "speed", "reliability", "maneuverability", "notes",
}

// WriteMatchCSV writes match records as a flat CSV table. Ids and
// timestamps are deliberately omitted: an importing store assigns its own.
func WriteMatchCSV(w io.Writer, matches []model.MatchRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(matchCSVHeader); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, m := range matches {
		row := []string{
			strconv.Itoa(m.MatchNumber),
			strconv.Itoa(m.TeamNumber),
			string(m.Alliance),
			string(m.Result),
			string(m.AutoStart),
		}
		row = append(row, phaseColumns(m.Auto)...)
		row = append(row, phaseColumns(m.Teleop)...)
		row = append(row,
			string(m.Ascent),
			strconv.Itoa(m.Ratings.Speed),
			strconv.Itoa(m.Ratings.Reliability),
			strconv.Itoa(m.Ratings.Maneuverability),
			m.Notes,
		)
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// ReadMatchCSV parses match records from the CSV layout WriteMatchCSV
// produces. Each row is validated; the first invalid row aborts the parse
// with its line number so a bad bulk file fails loudly instead of loading
// partially.
func ReadMatchCSV(r io.Reader) ([]model.MatchRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(matchCSVHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "export: read csv")
	}
	if len(rows) == 0 {
		return nil, eris.New("export: csv is empty")
	}

	records := make([]model.MatchRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		rec, err := parseMatchRow(row)
		if err != nil {
			return nil, eris.Wrapf(err, "export: csv line %d", line)
		}
		if err := rec.Validate(); err != nil {
			return nil, eris.Wrapf(err, "export: csv line %d", line)
		}
		records = append(records, rec)
	}
	return records, nil
}

func phaseColumns(p model.PhaseActions) []string {
	return []string{
		strconv.FormatBool(p.Parked),
		strconv.Itoa(p.SampleCollection),
		strconv.Itoa(p.NetZonePlacement),
		strconv.Itoa(p.LowBasket),
		strconv.Itoa(p.HighBasket),
		strconv.Itoa(p.LowChamber),
		strconv.Itoa(p.HighChamber),
	}
}

func parseMatchRow(row []string) (model.MatchRecord, error) {
	var rec model.MatchRecord
	var err error

	if rec.MatchNumber, err = strconv.Atoi(row[0]); err != nil {
		return rec, eris.Wrap(err, "match_number")
	}
	if rec.TeamNumber, err = strconv.Atoi(row[1]); err != nil {
		return rec, eris.Wrap(err, "team_number")
	}
	rec.Alliance = model.AllianceColor(row[2])
	rec.Result = model.MatchResult(row[3])
	rec.AutoStart = model.StartPosition(row[4])

	if rec.Auto, err = parsePhase(row[5:12]); err != nil {
		return rec, eris.Wrap(err, "auto phase")
	}
	if rec.Teleop, err = parsePhase(row[12:19]); err != nil {
		return rec, eris.Wrap(err, "teleop phase")
	}

	rec.Ascent = model.AscentLevel(row[19])
	if rec.Ratings.Speed, err = strconv.Atoi(row[20]); err != nil {
		return rec, eris.Wrap(err, "speed")
	}
	if rec.Ratings.Reliability, err = strconv.Atoi(row[21]); err != nil {
		return rec, eris.Wrap(err, "reliability")
	}
	if rec.Ratings.Maneuverability, err = strconv.Atoi(row[22]); err != nil {
		return rec, eris.Wrap(err, "maneuverability")
	}
	rec.Notes = row[23]

	return rec, nil
}

func parsePhase(cols []string) (model.PhaseActions, error) {
	var p model.PhaseActions
	var err error

	if p.Parked, err = strconv.ParseBool(cols[0]); err != nil {
		return p, eris.Wrap(err, "parked")
	}

	counters := []*int{
		&p.SampleCollection, &p.NetZonePlacement, &p.LowBasket,
		&p.HighBasket, &p.LowChamber, &p.HighChamber,
	}
	for i, dst := range counters {
		if *dst, err = strconv.Atoi(cols[i+1]); err != nil {
			return p, eris.Wrapf(err, "counter column %d", i+1)
		}
	}
	return p, nil
}
