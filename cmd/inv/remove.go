package main

import (
	"fmt"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <item> <qty>",
	Aliases: []string{"rm"},
	Short:   "Remove stock of an item",
	Long: `Remove qty units of an item.

If qty is at least the quantity held, the item is deleted from the
inventory rather than kept at zero. Removing an item that is not held
is reported and changes nothing.

An inventory file that cannot be decoded is never overwritten unless
--force is given.

Examples:
  inv remove apple 3
  inv rm banana 100`,
	Args:              cobra.ExactArgs(2),
	RunE:              runRemove,
	ValidArgsFunction: completeItems,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	item := args[0]
	qty, err := stock.ParseQuantity(args[1])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	r := s.Stock.Remove(item, qty)
	if err := cli.CheckResult(r); err != nil {
		return err
	}
	if err := s.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cli.FormatOutcome(r.Outcome), r)
	return nil
}
