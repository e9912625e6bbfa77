package main

import (
	"github.com/jacksmith/inv/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every item and its quantity",
	Long: `Print a report of all items and their quantities.

By default the report uses the plain "item -> qty" layout. With --table,
items are aligned in columns and low-stock rows are flagged.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var reportTable bool

func init() {
	reportCmd.Flags().BoolVar(&reportTable, "table", false, "aligned table with low-stock flags")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	if reportTable {
		report.Table(cmd.OutOrStdout(), s.Stock, s.Config.LowThreshold)
		return nil
	}
	report.Items(cmd.OutOrStdout(), s.Stock)
	return nil
}
