package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <item>",
	Short: "Print the quantity of an item",
	Long: `Print the quantity held of an item.

Items that are not held print 0.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runGet,
	ValidArgsFunction: completeItems,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.Stock.Quantity(args[0]))
	return nil
}
