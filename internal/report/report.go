// Package report renders read-only views of an inventory.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/model"
)

const (
	itemsHeader = "--- Items Report ---"
	itemsFooter = "--------------------"
	emptyText   = "Inventory is empty."
	noLowText   = "No low-stock items."
)

// Source is the read side of a stock store.
type Source interface {
	Items() model.Snapshot
	LowItems(threshold int) []string
}

// Items writes every item and its quantity between a header and footer
// line, or an explicit empty message.
func Items(w io.Writer, src Source) {
	items := src.Items()

	fmt.Fprintf(w, "\n%s\n", itemsHeader)
	if len(items) == 0 {
		fmt.Fprintln(w, emptyText)
	}
	for _, e := range items {
		fmt.Fprintf(w, "%s -> %d\n", e.Name, e.Quantity)
	}
	fmt.Fprintf(w, "%s\n\n", itemsFooter)
}

// Low writes the items at or below threshold with their quantities.
func Low(w io.Writer, src Source, threshold int) {
	names := src.LowItems(threshold)
	if len(names) == 0 {
		fmt.Fprintln(w, noLowText)
		return
	}

	qty := src.Items().Map()
	fmt.Fprintf(w, "Low stock (<= %d):\n", threshold)
	for _, name := range names {
		fmt.Fprintf(w, "  %s -> %d\n", name, qty[name])
	}
}

// Table writes an aligned table of items. Items at or below threshold are
// flagged as low.
func Table(w io.Writer, src Source, threshold int) {
	items := src.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, emptyText)
		return
	}

	table := cli.NewTable()
	table.SetMaxWidth(0, cli.DefaultMaxNameWidth)
	table.SetAlign(1, cli.AlignRight)
	for _, e := range items {
		status := cli.Green("[ok]")
		if e.Quantity <= threshold {
			status = cli.Yellow("[low]")
		}
		table.AddRow(e.Name, strconv.Itoa(e.Quantity), status)
	}
	table.Render(w)
}
