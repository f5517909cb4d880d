package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/seed"
)

var (
	seedTeams   int
	seedMatches int
	seedValue   int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo scouting data",
	Long:  "Fills the store with generated match and pit records. A fixed --seed reproduces the same dataset.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		teams := seedTeams
		if teams == 0 {
			teams = cfg.Seed.Teams
		}
		matchesPerTeam := seedMatches
		if matchesPerTeam == 0 {
			matchesPerTeam = cfg.Seed.MatchesPerTeam
		}

		gen := seed.New(seedValue)
		matches, pits := gen.Dataset(teams, matchesPerTeam)

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		for _, m := range matches {
			if _, err := st.AddMatch(ctx, m); err != nil {
				return eris.Wrap(err, "seed: add match")
			}
		}
		for _, p := range pits {
			if _, err := st.AddPit(ctx, p); err != nil {
				return eris.Wrap(err, "seed: add pit")
			}
		}

		zap.L().Info("seed complete",
			zap.Int("teams", teams),
			zap.Int("matches", len(matches)),
			zap.Int("pits", len(pits)),
			zap.Int64("seed", gen.Seed()),
		)
		fmt.Printf("Seeded %d teams: %d match records, %d pit records (seed %d)\n",
			teams, len(matches), len(pits), gen.Seed())
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedTeams, "teams", 0, "number of teams (default from config)")
	seedCmd.Flags().IntVar(&seedMatches, "matches", 0, "match records per team (default from config)")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (0 = time-based)")
	rootCmd.AddCommand(seedCmd)
}
