package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gearbox-works/scout-cli/internal/analysis"
	"github.com/gearbox-works/scout-cli/internal/model"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Rank, inspect, and compare scouted teams",
}

var (
	teamsListSort   string
	teamsListDesc   bool
	teamsListFilter string
)

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the team ranking table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		key, err := analysis.ParseSortKey(teamsListSort)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		matches, pits, err := loadSnapshot(ctx, st)
		if err != nil {
			return eris.Wrap(err, "teams list")
		}

		summaries := newAggregator().SummarizeAll(matches, pits)
		summaries = analysis.Filter(summaries, teamsListFilter)
		summaries = analysis.Rank(summaries, key, teamsListDesc)

		if len(summaries) == 0 {
			fmt.Fprintln(os.Stderr, "No teams scouted yet.")
			return nil
		}

		formatTeamTable(os.Stdout, summaries)
		return nil
	},
}

var teamsShowCmd = &cobra.Command{
	Use:   "show <team-number>",
	Short: "Show one team's summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		teamNumber, err := strconv.Atoi(args[0])
		if err != nil || teamNumber < 1 {
			return eris.Errorf("teams show: invalid team number %q", args[0])
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		matches, pits, err := loadSnapshot(ctx, st)
		if err != nil {
			return eris.Wrap(err, "teams show")
		}

		summary := newAggregator().Summarize(teamNumber, matches, pits)
		formatComparison(os.Stdout, []model.TeamSummary{summary})
		return nil
	},
}

var teamsCompareCmd = &cobra.Command{
	Use:   "compare <team-number>...",
	Short: "Compare 2-4 teams side by side",
	Args:  cobra.RangeArgs(2, analysis.MaxCompareTeams),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		numbers := make([]int, 0, len(args))
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil || n < 1 {
				return eris.Errorf("teams compare: invalid team number %q", a)
			}
			numbers = append(numbers, n)
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		matches, pits, err := loadSnapshot(ctx, st)
		if err != nil {
			return eris.Wrap(err, "teams compare")
		}

		summaries := newAggregator().SummarizeAll(matches, pits)
		selected, err := analysis.Compare(summaries, numbers)
		if err != nil {
			return err
		}

		formatComparison(os.Stdout, selected)
		return nil
	},
}

func init() {
	teamsListCmd.Flags().StringVar(&teamsListSort, "sort", string(analysis.SortByTeamNumber), "sort key: team|name|matches|auto|teleop|endgame|total|winrate|speed|reliability|maneuverability")
	teamsListCmd.Flags().BoolVar(&teamsListDesc, "desc", false, "sort descending")
	teamsListCmd.Flags().StringVar(&teamsListFilter, "filter", "", "filter by team number or name substring")

	teamsCmd.AddCommand(teamsListCmd, teamsShowCmd, teamsCompareCmd)
	rootCmd.AddCommand(teamsCmd)
}
