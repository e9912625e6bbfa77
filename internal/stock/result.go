package stock

import "fmt"

// Outcome is what a mutation did to the store.
type Outcome string

const (
	OutcomeAdded    Outcome = "added"
	OutcomeRemoved  Outcome = "removed"
	OutcomeDepleted Outcome = "depleted" // entry deleted by floor-at-removal
	OutcomeRejected Outcome = "rejected"
	OutcomeNotFound Outcome = "not_found"
)

// Result describes a single Add, Remove or Apply call.
type Result struct {
	Outcome  Outcome
	Item     string
	Qty      int   // requested amount
	Quantity int   // stored quantity after the call
	Err      error // set for rejected and not_found outcomes
}

// Applied reports whether the call changed, or was allowed to change, state.
func (r Result) Applied() bool {
	switch r.Outcome {
	case OutcomeAdded, OutcomeRemoved, OutcomeDepleted:
		return true
	default:
		return false
	}
}

func (r Result) String() string {
	switch r.Outcome {
	case OutcomeAdded:
		return fmt.Sprintf("added %d of %s (now %d)", r.Qty, r.Item, r.Quantity)
	case OutcomeRemoved:
		return fmt.Sprintf("removed %d of %s (now %d)", r.Qty, r.Item, r.Quantity)
	case OutcomeDepleted:
		return fmt.Sprintf("removed %s (all stock taken)", r.Item)
	case OutcomeRejected, OutcomeNotFound:
		return fmt.Sprintf("%s: %v", r.Outcome, r.Err)
	default:
		return string(r.Outcome)
	}
}
