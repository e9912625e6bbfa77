// Package stock holds the in-memory item quantities and the rules for
// changing them.
//
// A Store never panics and never returns an error for bad input. Every
// mutation reports a Result instead, logs through zap and notifies any
// attached observers. Removing at least the held quantity deletes the item
// (floor-at-removal), so the store never holds a zero or negative row.
package stock

import (
	"math"
	"strings"
	"time"

	"github.com/jacksmith/inv/internal/model"
	"go.uber.org/zap"
)

// DefaultLowThreshold is the quantity at or below which an item is low.
const DefaultLowThreshold = 5

// Store maps item names to quantities. It is not safe for concurrent use.
type Store struct {
	qty       map[string]int
	order     []string // insertion order of live keys
	log       *zap.Logger
	observers []Observer
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver attaches an observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.Observe(o)
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		qty: make(map[string]int),
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe attaches o to the store. Nil observers are ignored.
func (s *Store) Observe(o Observer) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Add increases the quantity of item by qty, creating the item if needed.
// An empty item name, a negative qty or a qty that would push the total
// past math.MaxInt is rejected.
func (s *Store) Add(item string, qty int) Result {
	if err := validate(item, qty); err != nil {
		return s.reject(item, qty, err)
	}

	cur, ok := s.qty[item]
	if qty > math.MaxInt-cur {
		return s.reject(item, qty, &ValidationError{Field: "quantity", Message: "would overflow"})
	}
	if qty > 0 {
		if !ok {
			s.order = append(s.order, item)
		}
		cur += qty
		s.qty[item] = cur
	}

	s.log.Info("added stock",
		zap.String("item", item),
		zap.Int("qty", qty),
		zap.Int("total", cur),
	)
	return s.emit(Result{Outcome: OutcomeAdded, Item: item, Qty: qty, Quantity: cur})
}

// Remove decreases the quantity of item by qty. If the held quantity is
// not greater than qty the item is deleted. Removing an item the store
// does not hold reports OutcomeNotFound and changes nothing.
func (s *Store) Remove(item string, qty int) Result {
	if err := validate(item, qty); err != nil {
		return s.reject(item, qty, err)
	}

	cur, ok := s.qty[item]
	if !ok {
		err := &NotFoundError{Item: item}
		s.log.Warn("attempted to remove non-existent item", zap.String("item", item))
		return s.emit(Result{Outcome: OutcomeNotFound, Item: item, Qty: qty, Err: err})
	}

	if cur <= qty {
		s.delete(item)
		s.log.Info("removed item (all stock taken)", zap.String("item", item))
		return s.emit(Result{Outcome: OutcomeDepleted, Item: item, Qty: qty})
	}

	cur -= qty
	s.qty[item] = cur
	s.log.Info("removed stock",
		zap.String("item", item),
		zap.Int("qty", qty),
		zap.Int("total", cur),
	)
	return s.emit(Result{Outcome: OutcomeRemoved, Item: item, Qty: qty, Quantity: cur})
}

// Quantity returns the held quantity of item, or 0 if absent.
func (s *Store) Quantity(item string) int {
	return s.qty[item]
}

// Has reports whether the store holds item.
func (s *Store) Has(item string) bool {
	_, ok := s.qty[item]
	return ok
}

// Len returns the number of items held.
func (s *Store) Len() int {
	return len(s.order)
}

// Items returns every entry in store order. The result is a copy.
func (s *Store) Items() model.Snapshot {
	out := make(model.Snapshot, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, model.Entry{Name: name, Quantity: s.qty[name]})
	}
	return out
}

// Snapshot is an alias of Items for the persistence side.
func (s *Store) Snapshot() model.Snapshot {
	return s.Items()
}

// LowItems returns the names of items whose quantity is at or below
// threshold, in store order.
func (s *Store) LowItems(threshold int) []string {
	var low []string
	for _, name := range s.order {
		if s.qty[name] <= threshold {
			low = append(low, name)
		}
	}
	return low
}

// Replace discards the current contents and loads snap. Entries with an
// empty name or a non-positive quantity are skipped; a repeated name keeps
// its first position and last quantity. Observers are not notified.
func (s *Store) Replace(snap model.Snapshot) {
	s.qty = make(map[string]int, len(snap))
	s.order = s.order[:0]
	for _, e := range snap {
		if strings.TrimSpace(e.Name) == "" || e.Quantity <= 0 {
			s.log.Warn("skipping invalid entry",
				zap.String("item", e.Name),
				zap.Int("qty", e.Quantity),
			)
			continue
		}
		if _, ok := s.qty[e.Name]; !ok {
			s.order = append(s.order, e.Name)
		}
		s.qty[e.Name] = e.Quantity
	}
}

func (s *Store) delete(item string) {
	delete(s.qty, item)
	for i, name := range s.order {
		if name == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Store) reject(item string, qty int, err error) Result {
	s.log.Warn("rejected stock adjustment",
		zap.String("item", item),
		zap.Int("qty", qty),
		zap.Error(err),
	)
	return s.emit(Result{Outcome: OutcomeRejected, Item: item, Qty: qty, Quantity: s.qty[item], Err: err})
}

func (s *Store) emit(r Result) Result {
	if len(s.observers) == 0 {
		return r
	}
	e := Event{Result: r, At: s.now()}
	for _, o := range s.observers {
		o.Observe(e)
	}
	return r
}

func validate(item string, qty int) error {
	if strings.TrimSpace(item) == "" {
		return &ValidationError{Field: "item", Message: "must be a non-empty string"}
	}
	if qty < 0 {
		return &ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	return nil
}
