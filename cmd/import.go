package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gearbox-works/scout-cli/internal/export"
)

var importCSVPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import match records from CSV",
	Long:  `Imports match records from the CSV layout "scout export --format csv" produces. Every row is validated before anything is stored; a bad row aborts the whole import.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		f, err := os.Open(importCSVPath)
		if err != nil {
			return eris.Wrap(err, "import: open csv")
		}
		defer f.Close() //nolint:errcheck

		records, err := export.ReadMatchCSV(f)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		for _, rec := range records {
			if _, err := st.AddMatch(ctx, rec); err != nil {
				return eris.Wrap(err, "import: add match")
			}
		}

		zap.L().Info("import complete",
			zap.Int("records", len(records)),
			zap.String("csv", importCSVPath),
		)
		fmt.Printf("Imported %d match records from %s\n", len(records), importCSVPath)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "path to CSV file (required)")
	_ = importCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(importCmd)
}
