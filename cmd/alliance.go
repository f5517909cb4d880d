package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var allianceCmd = &cobra.Command{
	Use:   "alliance",
	Short: "Recommend 3-team alliances from scouting data",
	Long:  "Proposes three alliances: highest combined score, balanced phase specialists, and best capability coverage. Needs a minimum number of scouted teams before it will compute.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		matches, pits, err := loadSnapshot(ctx, st)
		if err != nil {
			return eris.Wrap(err, "alliance")
		}

		summaries := newAggregator().SummarizeAll(matches, pits)
		rec := newRecommender()
		candidates := rec.Recommend(summaries)

		if len(candidates) == 0 {
			missing := rec.MinTeams() - len(summaries)
			if missing < 0 {
				missing = 0
			}
			fmt.Fprintf(os.Stderr,
				"Not enough data for recommendations: %d teams scouted, at least %d needed. Scout %d more.\n",
				len(summaries), rec.MinTeams(), missing)
			return nil
		}

		formatCandidates(os.Stdout, candidates)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allianceCmd)
}
