package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/analysis"
	"github.com/gearbox-works/scout-cli/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records and rankings",
	Long: `Exports the full store plus the derived ranking table.

Formats:
  json, yaml  full snapshot (matches, pits, rankings)
  csv         match records only, re-importable via "scout import"
  xlsx        three-sheet workbook (Matches, Pits, Rankings)`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		format, err := export.ParseFormat(exportFormat)
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
			return eris.Wrap(err, "export")
		}

		rankings := newAggregator().SummarizeAll(matches, pits)
		rankings = analysis.Rank(rankings, analysis.SortByTotal, true)

		var w io.Writer = os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return eris.Wrap(err, "export: create output file")
			}
			defer f.Close() //nolint:errcheck
			w = f
		}

		snap := export.Snapshot{Matches: matches, Pits: pits, Rankings: rankings}
		if err := export.Write(w, snap, format); err != nil {
			return err
		}

		if exportOut != "" {
			zap.L().Info("export complete",
				zap.String("format", string(format)),
				zap.String("out", exportOut),
				zap.Int("matches", len(matches)),
				zap.Int("pits", len(pits)),
			)
			fmt.Fprintf(os.Stderr, "Exported %d match and %d pit records to %s\n",
				len(matches), len(pits), exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json|yaml|csv|xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
