package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/ops"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Apply a batch of adjustments",
	Long: `Apply a YAML or JSON list of adjustments in order, then save once.

Each record has op (add or remove), item and qty. Records with the wrong
types, such as a numeric item or a text quantity, are rejected and
skipped; the rest of the batch still applies.

Example file:
  - {op: add, item: apple, qty: 10}
  - {op: remove, item: apple, qty: 3}`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applyDryRun bool

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "show outcomes without saving")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	adjs, err := ops.LoadAdjustments(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	results, sum := ops.ApplyAll(s.Stock, adjs)

	out := cmd.OutOrStdout()
	table := cli.NewTable()
	for i, r := range results {
		table.AddRow(strconv.Itoa(i+1), cli.FormatOutcome(r.Outcome), r.String())
	}
	if table.Len() == 0 {
		fmt.Fprintln(out, "No adjustments.")
		return nil
	}
	table.Render(out)
	fmt.Fprintf(out, "%d applied, %d rejected, %d not found\n", sum.Applied, sum.Rejected, sum.NotFound)

	if applyDryRun {
		fmt.Fprintln(out, "Dry run: nothing saved.")
		return nil
	}
	return s.Commit()
}
