// Package model defines the inventory document types and their JSON codec.
package model

// Entry is one item row of the inventory document.
type Entry struct {
	Name     string
	Quantity int
}

// Snapshot is an ordered list of entries. Order is the store's iteration
// order; the file format itself does not require one.
type Snapshot []Entry

// Map returns the snapshot as a name to quantity map.
func (s Snapshot) Map() map[string]int {
	m := make(map[string]int, len(s))
	for _, e := range s {
		m[e.Name] = e.Quantity
	}
	return m
}

// Names returns the entry names in order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for _, e := range s {
		names = append(names, e.Name)
	}
	return names
}

// SkippedEntry records a document row that could not be used as a quantity.
type SkippedEntry struct {
	Name   string
	Value  string // raw JSON text of the value
	Reason string
}

// Document is the result of decoding an inventory file.
type Document struct {
	Entries Snapshot
	Skipped []SkippedEntry
}
