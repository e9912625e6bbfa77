package ops

import (
	"fmt"
	"io"

	"github.com/jacksmith/inv/internal/report"
	"github.com/jacksmith/inv/internal/stock"
)

// demoSteps is the fixed walkthrough run by RunDemo. The third step has
// the wrong type for both fields and must be rejected.
var demoSteps = []stock.Adjustment{
	{Op: stock.OpAdd, Item: "apple", Qty: 10},
	{Op: stock.OpAdd, Item: "banana", Qty: 15},
	{Op: stock.OpAdd, Item: 123, Qty: "ten"},
	{Op: stock.OpRemove, Item: "apple", Qty: 3},
	{Op: stock.OpRemove, Item: "orange", Qty: 1},
}

// RunDemo applies the walkthrough to the session, saves it and writes the
// results to w. The journal, if any, is printed last. A failed save is
// returned after the report has been written.
func RunDemo(s *Session, w io.Writer, journal *stock.Journal) error {
	ApplyAll(s.Stock, demoSteps)

	fmt.Fprintf(w, "Apple stock: %d\n", s.Stock.Quantity("apple"))
	fmt.Fprintf(w, "Low items: %v\n", s.Stock.LowItems(s.Config.LowThreshold))

	commitErr := s.Commit()
	report.Items(w, s.Stock)

	if journal != nil && journal.Len() > 0 {
		fmt.Fprintln(w, "Journal:")
		for _, line := range journal.Entries() {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	s.log.Info("demo finished")
	return commitErr
}
