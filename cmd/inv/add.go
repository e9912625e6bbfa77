package main

import (
	"fmt"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <item> <qty>",
	Short: "Add stock of an item",
	Long: `Add qty units of an item, creating it if needed.

The quantity must be a non-negative integer. Rejected input is logged
and leaves the inventory file untouched.

If the inventory file cannot be decoded it is not overwritten; fix it by
hand or pass --force to replace it. Entries with invalid quantities are
skipped on load and dropped from the file on the next save.

Examples:
  inv add apple 10
  inv add "green tea" 3`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	item := args[0]
	qty, err := stock.ParseQuantity(args[1])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	r := s.Stock.Add(item, qty)
	if err := cli.CheckResult(r); err != nil {
		return err
	}
	if err := s.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cli.FormatOutcome(r.Outcome), r)
	return nil
}
