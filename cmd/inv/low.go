package main

import (
	"github.com/jacksmith/inv/internal/report"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/spf13/cobra"
)

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List low-stock items",
	Long: `List items whose quantity is at or below a threshold.

The threshold defaults to low_threshold from .invconfig.yaml (5 if unset).

Examples:
  inv low
  inv low --threshold 10`,
	Args: cobra.NoArgs,
	RunE: runLow,
}

var lowThreshold int

func init() {
	lowCmd.Flags().IntVarP(&lowThreshold, "threshold", "t", stock.DefaultLowThreshold, "quantity at or below which an item is low (default from config)")
	rootCmd.AddCommand(lowCmd)
}

func runLow(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	threshold := s.Config.LowThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = lowThreshold
	}

	report.Low(cmd.OutOrStdout(), s.Stock, threshold)
	return nil
}
