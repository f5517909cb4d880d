package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/model"
	"github.com/gearbox-works/scout-cli/internal/store"
)

var pitCmd = &cobra.Command{
	Use:   "pit",
	Short: "Record and inspect pit-visit robot profiles",
	Long:  "Pit records are one-shot snapshots: each submission is independent, with no edit or delete.",
}

var (
	pitAddTeam            int
	pitAddName            string
	pitAddDrivetrain      string
	pitAddDrivetrainNotes string
	pitAddLength          float64
	pitAddWidth           float64
	pitAddHeight          float64
	pitAddWeight          float64

	pitAddCollectSamples bool
	pitAddNetZone        bool
	pitAddLowBasket      bool
	pitAddHighBasket     bool
	pitAddLowChamber     bool
	pitAddHighChamber    bool
	pitAddMaxAscent      string

	pitAddStartPositions  []string
	pitAddAutoSamples     bool
	pitAddAutoScoring     bool
	pitAddAutoAscent      bool
	pitAddSpeed           int
	pitAddReliability     int
	pitAddManeuverability int
	pitAddRole            string
	pitAddZone            string
	pitAddStrategyNotes   string
	pitAddNotes           string
)

var pitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a team's robot profile from a pit visit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		starts := make([]model.StartPosition, 0, len(pitAddStartPositions))
		for _, s := range pitAddStartPositions {
			starts = append(starts, model.StartPosition(s))
		}

		rec := model.PitRecord{
			TeamNumber:      pitAddTeam,
			TeamName:        pitAddName,
			Drivetrain:      model.DrivetrainType(pitAddDrivetrain),
			DrivetrainNotes: pitAddDrivetrainNotes,
			LengthIn:        pitAddLength,
			WidthIn:         pitAddWidth,
			HeightIn:        pitAddHeight,
			WeightLb:        pitAddWeight,
			Capabilities: model.CapabilitySet{
				CollectSamples: pitAddCollectSamples,
				NetZone:        pitAddNetZone,
				LowBasket:      pitAddLowBasket,
				HighBasket:     pitAddHighBasket,
				LowChamber:     pitAddLowChamber,
				HighChamber:    pitAddHighChamber,
				MaxAscent:      model.AscentLevel(pitAddMaxAscent),
			},
			AutoStartPositions:   starts,
			AutoSampleCollection: pitAddAutoSamples,
			AutoScoring:          pitAddAutoScoring,
			AutoAscent:           pitAddAutoAscent,
			Ratings: model.Ratings{
				Speed:           pitAddSpeed,
				Reliability:     pitAddReliability,
				Maneuverability: pitAddManeuverability,
			},
			PreferredRole: model.PreferredRole(pitAddRole),
			PreferredZone: model.PreferredZone(pitAddZone),
			StrategyNotes: pitAddStrategyNotes,
			Notes:         pitAddNotes,
		}
		if err := rec.Validate(); err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		created, err := st.AddPit(ctx, rec)
		if err != nil {
			return eris.Wrap(err, "pit add")
		}

		zap.L().Info("pit record added",
			zap.String("id", created.ID),
			zap.Int("team", created.TeamNumber),
		)
		fmt.Printf("Recorded pit profile for team %d %q (id %s)\n", created.TeamNumber, created.TeamName, created.ID)
		return nil
	},
}

var (
	pitListTeam  int
	pitListLimit int
)

var pitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pit records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		records, err := st.ListPits(ctx, store.PitFilter{
			TeamNumber: pitListTeam,
			Limit:      pitListLimit,
		})
		if err != nil {
			return eris.Wrap(err, "pit list")
		}

		if len(records) == 0 {
			fmt.Fprintln(os.Stderr, "No pit records found.")
			return nil
		}

		formatPitList(os.Stdout, records)
		return nil
	},
}

var pitShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show one pit record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rec, err := st.GetPit(ctx, args[0])
		if err != nil {
			if store.IsNotFound(err) {
				fmt.Fprintf(os.Stderr, "Pit record %s not found.\n", args[0])
				return err
			}
			return eris.Wrap(err, "pit show")
		}

		formatPitDetail(os.Stdout, *rec)
		return nil
	},
}

func init() {
	f := pitAddCmd.Flags()
	f.IntVar(&pitAddTeam, "team", 0, "team number (required)")
	f.StringVar(&pitAddName, "name", "", "team name (required)")
	f.StringVar(&pitAddDrivetrain, "drivetrain", "tank", "drivetrain: tank|mecanum|swerve|other")
	f.StringVar(&pitAddDrivetrainNotes, "drivetrain-notes", "", "drivetrain notes")
	f.Float64Var(&pitAddLength, "length", 0, "robot length in inches")
	f.Float64Var(&pitAddWidth, "width", 0, "robot width in inches")
	f.Float64Var(&pitAddHeight, "height", 0, "robot height in inches")
	f.Float64Var(&pitAddWeight, "weight", 0, "robot weight in pounds")

	f.BoolVar(&pitAddCollectSamples, "can-collect-samples", false, "robot can collect samples")
	f.BoolVar(&pitAddNetZone, "can-net-zone", false, "robot can place in the net zone")
	f.BoolVar(&pitAddLowBasket, "can-low-basket", false, "robot can score the low basket")
	f.BoolVar(&pitAddHighBasket, "can-high-basket", false, "robot can score the high basket")
	f.BoolVar(&pitAddLowChamber, "can-low-chamber", false, "robot can place in the low chamber")
	f.BoolVar(&pitAddHighChamber, "can-high-chamber", false, "robot can place in the high chamber")
	f.StringVar(&pitAddMaxAscent, "max-ascent", "none", "max ascent level: none|level1|level2|level3")

	f.StringSliceVar(&pitAddStartPositions, "auto-starts", nil, "supported auto start positions (observation, net, specimen)")
	f.BoolVar(&pitAddAutoSamples, "auto-sample-collection", false, "collects samples in auto")
	f.BoolVar(&pitAddAutoScoring, "auto-scoring", false, "scores in auto")
	f.BoolVar(&pitAddAutoAscent, "auto-ascent", false, "ascends in auto")

	f.IntVar(&pitAddSpeed, "speed", 3, "robot speed rating 1-5")
	f.IntVar(&pitAddReliability, "reliability", 3, "robot reliability rating 1-5")
	f.IntVar(&pitAddManeuverability, "maneuverability", 3, "robot maneuverability rating 1-5")
	f.StringVar(&pitAddRole, "role", "hybrid", "preferred role: sampler|scorer|hybrid")
	f.StringVar(&pitAddZone, "zone", "mixed", "preferred zone: observation|net|specimen|mixed")
	f.StringVar(&pitAddStrategyNotes, "strategy-notes", "", "strategy notes")
	f.StringVar(&pitAddNotes, "notes", "", "general notes")

	_ = pitAddCmd.MarkFlagRequired("team")
	_ = pitAddCmd.MarkFlagRequired("name")

	pitListCmd.Flags().IntVar(&pitListTeam, "team", 0, "filter by team number")
	pitListCmd.Flags().IntVar(&pitListLimit, "limit", 0, "limit result count")

	pitCmd.AddCommand(pitAddCmd, pitListCmd, pitShowCmd)
	rootCmd.AddCommand(pitCmd)
}
