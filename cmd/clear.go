package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	clearMatchesOnly bool
	clearPitsOnly    bool
	clearYes         bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete record collections",
	Long:  "Clears the match records, the pit records, or (default) both. Requires --yes.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if !clearYes {
			return eris.New("clear: refusing to delete records without --yes")
		}

		both := !clearMatchesOnly && !clearPitsOnly
		matches := clearMatchesOnly || both
		pits := clearPitsOnly || both

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if matches {
			if err := st.ClearMatches(ctx); err != nil {
				return eris.Wrap(err, "clear matches")
			}
		}
		if pits {
			if err := st.ClearPits(ctx); err != nil {
				return eris.Wrap(err, "clear pits")
			}
		}

		zap.L().Info("collections cleared",
			zap.Bool("matches", matches),
			zap.Bool("pits", pits),
		)
		fmt.Println("Cleared.")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearMatchesOnly, "matches", false, "clear match records only")
	clearCmd.Flags().BoolVar(&clearPitsOnly, "pits", false, "clear pit records only")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(clearCmd)
}
