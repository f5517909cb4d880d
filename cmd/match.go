package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/model"
	"github.com/gearbox-works/scout-cli/internal/scoring"
	"github.com/gearbox-works/scout-cli/internal/store"
)

// matchInput collects the flag values for one match observation. Both add
// and edit bind a full set; edit is a whole-record replace, so any flag
// left at its default becomes part of the new record.
type matchInput struct {
	matchNumber int
	teamNumber  int
	alliance    string
	result      string
	autoStart   string
	ascent      string

	autoParked   bool
	autoPhase    phaseInput
	teleopParked bool
	teleopPhase  phaseInput

	speed           int
	reliability     int
	maneuverability int
	notes           string
}

type phaseInput struct {
	samples     int
	netZone     int
	lowBasket   int
	highBasket  int
	lowChamber  int
	highChamber int
}

func (in *matchInput) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&in.matchNumber, "match", 0, "match number (required)")
	f.IntVar(&in.teamNumber, "team", 0, "team number (required)")
	f.StringVar(&in.alliance, "alliance", "red", "alliance color: red|blue")
	f.StringVar(&in.result, "result", "loss", "match result: win|tie|loss")
	f.StringVar(&in.autoStart, "auto-start", "observation", "auto start position: observation|net|specimen")
	f.StringVar(&in.ascent, "ascent", "none", "endgame ascent level: none|level1|level2|level3")

	f.BoolVar(&in.autoParked, "auto-parked", false, "parked in observation zone during auto")
	f.IntVar(&in.autoPhase.samples, "auto-samples", 0, "auto samples collected (no point value)")
	f.IntVar(&in.autoPhase.netZone, "auto-net", 0, "auto net zone placements")
	f.IntVar(&in.autoPhase.lowBasket, "auto-low-basket", 0, "auto low basket scores")
	f.IntVar(&in.autoPhase.highBasket, "auto-high-basket", 0, "auto high basket scores")
	f.IntVar(&in.autoPhase.lowChamber, "auto-low-chamber", 0, "auto low chamber placements")
	f.IntVar(&in.autoPhase.highChamber, "auto-high-chamber", 0, "auto high chamber placements")

	f.BoolVar(&in.teleopParked, "teleop-parked", false, "parked in observation zone during teleop")
	f.IntVar(&in.teleopPhase.samples, "teleop-samples", 0, "teleop samples collected (no point value)")
	f.IntVar(&in.teleopPhase.netZone, "teleop-net", 0, "teleop net zone placements")
	f.IntVar(&in.teleopPhase.lowBasket, "teleop-low-basket", 0, "teleop low basket scores")
	f.IntVar(&in.teleopPhase.highBasket, "teleop-high-basket", 0, "teleop high basket scores")
	f.IntVar(&in.teleopPhase.lowChamber, "teleop-low-chamber", 0, "teleop low chamber placements")
	f.IntVar(&in.teleopPhase.highChamber, "teleop-high-chamber", 0, "teleop high chamber placements")

	f.IntVar(&in.speed, "speed", 3, "robot speed rating 1-5")
	f.IntVar(&in.reliability, "reliability", 3, "robot reliability rating 1-5")
	f.IntVar(&in.maneuverability, "maneuverability", 3, "robot maneuverability rating 1-5")
	f.StringVar(&in.notes, "notes", "", "free-text notes")

	_ = cmd.MarkFlagRequired("match")
	_ = cmd.MarkFlagRequired("team")
}

func (in *matchInput) record() (model.MatchRecord, error) {
	rec := model.MatchRecord{
		MatchNumber: in.matchNumber,
		TeamNumber:  in.teamNumber,
		Alliance:    model.AllianceColor(in.alliance),
		Result:      model.MatchResult(in.result),
		AutoStart:   model.StartPosition(in.autoStart),
		Auto:        phaseActions(in.autoParked, in.autoPhase),
		Teleop:      phaseActions(in.teleopParked, in.teleopPhase),
		Ascent:      model.AscentLevel(in.ascent),
		Ratings: model.Ratings{
			Speed:           in.speed,
			Reliability:     in.reliability,
			Maneuverability: in.maneuverability,
		},
		Notes: in.notes,
	}
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

func phaseActions(parked bool, p phaseInput) model.PhaseActions {
	return model.PhaseActions{
		Parked:           parked,
		SampleCollection: p.samples,
		NetZonePlacement: p.netZone,
		LowBasket:        p.lowBasket,
		HighBasket:       p.highBasket,
		LowChamber:       p.lowChamber,
		HighChamber:      p.highChamber,
	}
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Record and manage match observations",
}

var matchAddInput matchInput

var matchAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one team's performance in one match",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		rec, err := matchAddInput.record()
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		created, err := st.AddMatch(ctx, rec)
		if err != nil {
			return eris.Wrap(err, "match add")
		}

		bd := scoring.Score(*created)
		zap.L().Info("match record added",
			zap.String("id", created.ID),
			zap.Int("team", created.TeamNumber),
			zap.Int("match", created.MatchNumber),
		)
		fmt.Printf("Recorded match %d for team %d (id %s)\n", created.MatchNumber, created.TeamNumber, created.ID)
		fmt.Printf("Score: auto=%d teleop=%d endgame=%d bonus=%d total=%d\n",
			bd.Auto, bd.Teleop, bd.Endgame, bd.Bonus, bd.Total)
		return nil
	},
}

var (
	matchListTeam  int
	matchListMatch int
	matchListLimit int
)

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List match records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		records, err := st.ListMatches(ctx, store.MatchFilter{
			TeamNumber:  matchListTeam,
			MatchNumber: matchListMatch,
			Limit:       matchListLimit,
		})
		if err != nil {
			return eris.Wrap(err, "match list")
		}

		if len(records) == 0 {
			fmt.Fprintln(os.Stderr, "No match records found.")
			return nil
		}

		formatMatchList(os.Stdout, records)
		return nil
	},
}

var matchShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one match record with its score breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetMatch(ctx, args[0])
		if err != nil {
			if store.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "Match record %s not found.\n", args[0])
				return err
			}
			return eris.Wrap(err, "match show")
		}

		formatMatchDetail(os.Stdout, *rec, scoring.Score(*rec))
		return nil
	},
}

var matchEditInput matchInput

var matchEditCmd = &cobra.Command{
	Use:   "edit <record-id>",
	Short: "Replace a match record in full",
	Long:  "Replaces the whole record under the given id, preserving the id and creation timestamp. Every field must be restated; flags left unset take their defaults.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rec, err := matchEditInput.record()
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		updated, err := st.ReplaceMatch(ctx, args[0], rec)
		if err != nil {
			if store.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "Match record %s not found; nothing changed.\n", args[0])
				return err
			}
			return eris.Wrap(err, "match edit")
		}

		zap.L().Info("match record replaced", zap.String("id", updated.ID))
		fmt.Printf("Updated match record %s\n", updated.ID)
		return nil
	},
}

var matchDeleteCmd = &cobra.Command{
	Use:   "delete <record-id>",
	Short: "Delete a match record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.DeleteMatch(ctx, args[0]); err != nil {
			if store.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "Match record %s not found; nothing changed.\n", args[0])
				return err
			}
			return eris.Wrap(err, "match delete")
		}

		zap.L().Info("match record deleted", zap.String("id", args[0]))
		fmt.Printf("Deleted match record %s\n", args[0])
		return nil
	},
}

func init() {
	matchAddInput.bind(matchAddCmd)
	matchEditInput.bind(matchEditCmd)

	matchListCmd.Flags().IntVar(&matchListTeam, "team", 0, "filter by team number")
	matchListCmd.Flags().IntVar(&matchListMatch, "match", 0, "filter by match number")
	matchListCmd.Flags().IntVar(&matchListLimit, "limit", 0, "limit result count")

	matchCmd.AddCommand(matchAddCmd, matchListCmd, matchShowCmd, matchEditCmd, matchDeleteCmd)
	rootCmd.AddCommand(matchCmd)
}
