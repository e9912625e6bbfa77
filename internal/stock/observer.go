package stock

import (
	"fmt"
	"time"
)

// journalTimeLayout matches the timestamp prefix of journal entries.
const journalTimeLayout = "2006-01-02 15:04:05.000000"

// Event is delivered to observers after every Add, Remove or Apply call,
// including rejected ones.
type Event struct {
	Result
	At time.Time
}

// Observer receives store events.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc allows plain functions to satisfy Observer.
type ObserverFunc func(e Event)

// Observe calls fn.
func (fn ObserverFunc) Observe(e Event) {
	if fn == nil {
		return
	}
	fn(e)
}

// Journal accumulates a human-readable line for every successful add.
// It is owned by the caller; attach it with Store.Observe or WithObserver.
type Journal struct {
	entries []string
}

// Observe records added outcomes and ignores everything else.
func (j *Journal) Observe(e Event) {
	if e.Outcome != OutcomeAdded {
		return
	}
	j.entries = append(j.entries, fmt.Sprintf("%s: Added %d of %s", e.At.Format(journalTimeLayout), e.Qty, e.Item))
}

// Entries returns a copy of the recorded lines in order.
func (j *Journal) Entries() []string {
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded lines.
func (j *Journal) Len() int {
	return len(j.entries)
}
