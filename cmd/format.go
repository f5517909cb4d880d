package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// formatMatchList writes a tabular list of match records to out.
func formatMatchList(out io.Writer, records []model.MatchRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tMATCH\tTEAM\tALLIANCE\tRESULT\tASCENT\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t-----\t----\t--------\t------\t------\t-------")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.MatchNumber, r.TeamNumber, r.Alliance, r.Result,
			r.Ascent, r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// formatMatchDetail prints one match record with its computed breakdown.
func formatMatchDetail(out io.Writer, r model.MatchRecord, bd model.ScoreBreakdown) {
	_, _ = fmt.Fprintf(out, "Match record %s\n", r.ID)
	_, _ = fmt.Fprintf(out, "  Match %d, team %d, %s alliance, result %s\n",
		r.MatchNumber, r.TeamNumber, r.Alliance, r.Result)
	_, _ = fmt.Fprintf(out, "  Auto (from %s): parked=%t samples=%d net=%d lowB=%d highB=%d lowC=%d highC=%d\n",
		r.AutoStart, r.Auto.Parked, r.Auto.SampleCollection, r.Auto.NetZonePlacement,
		r.Auto.LowBasket, r.Auto.HighBasket, r.Auto.LowChamber, r.Auto.HighChamber)
	_, _ = fmt.Fprintf(out, "  Teleop: parked=%t samples=%d net=%d lowB=%d highB=%d lowC=%d highC=%d\n",
		r.Teleop.Parked, r.Teleop.SampleCollection, r.Teleop.NetZonePlacement,
		r.Teleop.LowBasket, r.Teleop.HighBasket, r.Teleop.LowChamber, r.Teleop.HighChamber)
	_, _ = fmt.Fprintf(out, "  Ascent: %s  Ratings: speed=%d reliability=%d maneuverability=%d\n",
		r.Ascent, r.Ratings.Speed, r.Ratings.Reliability, r.Ratings.Maneuverability)
	if r.Notes != "" {
		_, _ = fmt.Fprintf(out, "  Notes: %s\n", r.Notes)
	}
	_, _ = fmt.Fprintf(out, "  Score: auto=%d (doubled in total) teleop=%d endgame=%d bonus=%d total=%d\n",
		bd.Auto, bd.Teleop, bd.Endgame, bd.Bonus, bd.Total)
}

// formatPitList writes a tabular list of pit records to out.
func formatPitList(out io.Writer, records []model.PitRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTEAM\tNAME\tDRIVETRAIN\tMAX_ASCENT\tROLE\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t----\t----\t----------\t----------\t----\t-------")

	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.TeamNumber, r.TeamName, r.Drivetrain,
			r.Capabilities.MaxAscent, r.PreferredRole,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// formatPitDetail prints one pit record.
func formatPitDetail(out io.Writer, r model.PitRecord) {
	_, _ = fmt.Fprintf(out, "Pit record %s\n", r.ID)
	_, _ = fmt.Fprintf(out, "  Team %d %q, %s drivetrain\n", r.TeamNumber, r.TeamName, r.Drivetrain)
	_, _ = fmt.Fprintf(out, "  Dimensions: %.1f x %.1f x %.1f in, %.1f lb\n",
		r.LengthIn, r.WidthIn, r.HeightIn, r.WeightLb)
	_, _ = fmt.Fprintf(out, "  Capabilities: %s (max ascent %s)\n",
		capabilityList(r.Capabilities), r.Capabilities.MaxAscent)
	starts := make([]string, 0, len(r.AutoStartPositions))
	for _, s := range r.AutoStartPositions {
		starts = append(starts, string(s))
	}
	_, _ = fmt.Fprintf(out, "  Auto: starts=[%s] samples=%t scoring=%t ascent=%t\n",
		strings.Join(starts, ", "), r.AutoSampleCollection, r.AutoScoring, r.AutoAscent)
	_, _ = fmt.Fprintf(out, "  Ratings: speed=%d reliability=%d maneuverability=%d\n",
		r.Ratings.Speed, r.Ratings.Reliability, r.Ratings.Maneuverability)
	_, _ = fmt.Fprintf(out, "  Prefers: %s role, %s zone\n", r.PreferredRole, r.PreferredZone)
	if r.StrategyNotes != "" {
		_, _ = fmt.Fprintf(out, "  Strategy: %s\n", r.StrategyNotes)
	}
	if r.Notes != "" {
		_, _ = fmt.Fprintf(out, "  Notes: %s\n", r.Notes)
	}
}

// formatTeamTable writes the ranking table to out.
func formatTeamTable(out io.Writer, teams []model.TeamSummary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TEAM\tNAME\tMATCHES\tAUTO\tTELEOP\tENDGAME\tTOTAL\tWIN%\tSPD\tREL\tMAN\tPIT")
	_, _ = fmt.Fprintln(w, "----\t----\t-------\t----\t------\t-------\t-----\t----\t---\t---\t---\t---")

	for _, t := range teams {
		pit := ""
		if t.HasPitData {
			pit = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%.0f%%\t%d\t%d\t%d\t%s\n",
			t.TeamNumber, t.Name, t.MatchCount,
			t.Avg.Auto, t.Avg.Teleop, t.Avg.Endgame, t.Avg.Total,
			t.WinRate, t.Ratings.Speed, t.Ratings.Reliability, t.Ratings.Maneuverability, pit,
		)
	}
	_ = w.Flush()
}

// formatComparison writes a side-by-side metric table, one column per team.
func formatComparison(out io.Writer, teams []model.TeamSummary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "METRIC"
	for _, t := range teams {
		header += fmt.Sprintf("\t%d %s", t.TeamNumber, t.Name)
	}
	_, _ = fmt.Fprintln(w, header)

	row := func(label string, value func(model.TeamSummary) string) {
		line := label
		for _, t := range teams {
			line += "\t" + value(t)
		}
		_, _ = fmt.Fprintln(w, line)
	}

	row("Matches", func(t model.TeamSummary) string { return fmt.Sprint(t.MatchCount) })
	row("Avg auto", func(t model.TeamSummary) string { return fmt.Sprint(t.Avg.Auto) })
	row("Avg teleop", func(t model.TeamSummary) string { return fmt.Sprint(t.Avg.Teleop) })
	row("Avg endgame", func(t model.TeamSummary) string { return fmt.Sprint(t.Avg.Endgame) })
	row("Avg total", func(t model.TeamSummary) string { return fmt.Sprint(t.Avg.Total) })
	row("Win rate", func(t model.TeamSummary) string { return fmt.Sprintf("%.0f%%", t.WinRate) })
	row("Speed", func(t model.TeamSummary) string { return fmt.Sprint(t.Ratings.Speed) })
	row("Reliability", func(t model.TeamSummary) string { return fmt.Sprint(t.Ratings.Reliability) })
	row("Maneuverability", func(t model.TeamSummary) string { return fmt.Sprint(t.Ratings.Maneuverability) })
	row("Capabilities", func(t model.TeamSummary) string { return capabilityList(t.Capabilities) })
	row("Max ascent", func(t model.TeamSummary) string { return string(t.Capabilities.MaxAscent) })

	_ = w.Flush()
}

// formatCandidates prints the alliance recommendations.
func formatCandidates(out io.Writer, candidates []model.AllianceCandidate) {
	for i, c := range candidates {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprintf(out, "%s\n", c.Name)
		_, _ = fmt.Fprintf(out, "  %s\n", c.Description)
		for _, t := range c.Teams {
			_, _ = fmt.Fprintf(out, "  - %d %s (avg total %d)\n", t.TeamNumber, t.Name, t.Avg.Total)
		}
		_, _ = fmt.Fprintf(out, "  Combined: auto=%d teleop=%d endgame=%d total=%d\n",
			c.Combined.Auto, c.Combined.Teleop, c.Combined.Endgame, c.Combined.Total)
		_, _ = fmt.Fprintf(out, "  Coverage: %.0f%%\n", c.Coverage)
	}
}

func capabilityList(c model.CapabilitySet) string {
	labels := []string{"samples", "net", "low basket", "high basket", "low chamber", "high chamber"}
	var have []string
	for i, f := range c.Flags() {
		if f {
			have = append(have, labels[i])
		}
	}
	if len(have) == 0 {
		return "none"
	}
	return strings.Join(have, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
