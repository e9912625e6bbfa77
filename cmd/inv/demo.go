package main

import (
	"github.com/jacksmith/inv/internal/ops"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a short walkthrough against the inventory file",
	Long: `Load the inventory, add apples and bananas, try an adjustment with
invalid types, remove some apples and a missing orange, then print the
apple stock and low items, save, and print the report and journal.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	journal := &stock.Journal{}
	s, err := openSession(cmd, journal)
	if err != nil {
		return err
	}
	return ops.RunDemo(s, cmd.OutOrStdout(), journal)
}
