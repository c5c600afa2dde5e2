package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsagg/internal/exporter"
	"newsagg/internal/query"
)

var (
	flagExportFormat  string
	flagExportOut     string
	flagExportSource  string
	flagExportKeyword string
	flagExportStart   string
	flagExportEnd     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored articles to a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		start, err := parseDateFlag("start", flagExportStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag("end", flagExportEnd)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		// Export is never subject to the view limit.
		articles, err := store.Query(cmd.Context(), query.Filter{
			Source:  flagExportSource,
			Keyword: flagExportKeyword,
			Start:   start,
			End:     end,
		})
		if err != nil {
			return err
		}

		n, err := exporter.Export(flagExportOut, flagExportFormat, articles)
		if err != nil {
			return err
		}
		if n == 0 {
			log.Warn("no articles match the filters, nothing exported")
			return nil
		}
		fmt.Printf("Exported %d rows to %s\n", n, flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "csv", "output format: csv, xlsx")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "export.csv", "output file path")
	exportCmd.Flags().StringVar(&flagExportSource, "source", "", "filter by source substring")
	exportCmd.Flags().StringVar(&flagExportKeyword, "keyword", "", "filter by keyword in title, summary, or url")
	exportCmd.Flags().StringVar(&flagExportStart, "start", "", "earliest publication date (YYYY-MM-DD or ISO-8601)")
	exportCmd.Flags().StringVar(&flagExportEnd, "end", "", "latest publication date (YYYY-MM-DD or ISO-8601)")
}
