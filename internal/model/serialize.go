package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNotObject is returned when the document is valid JSON but not an object.
var ErrNotObject = errors.New("inventory document must be a JSON object")

// SaveInventory encodes s and writes it to path.
func SaveInventory(path string, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write inventory file %s: %w", path, err)
	}
	return nil
}

// Decode parses a JSON object of item name to quantity.
// Key order is preserved. A repeated key keeps its first position and its
// last value. Values that are not non-negative integers are reported in
// Document.Skipped, and zero quantities are dropped silently.
func Decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotObject
	}

	doc := &Document{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		text := string(bytes.TrimSpace(raw))

		qty, reason := parseQuantity(text)
		if reason != "" {
			doc.Skipped = append(doc.Skipped, SkippedEntry{Name: name, Value: text, Reason: reason})
			continue
		}

		if i, seen := index[name]; seen {
			doc.Entries[i].Quantity = qty
			continue
		}
		index[name] = len(doc.Entries)
		doc.Entries = append(doc.Entries, Entry{Name: name, Quantity: qty})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after inventory object")
	}

	doc.Entries = dropZero(doc.Entries)
	return doc, nil
}

// Encode renders s as an indented JSON object in snapshot order.
func Encode(s Snapshot) ([]byte, error) {
	if len(s) == 0 {
		return []byte("{}\n"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range s {
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.WriteString("    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(e.Quantity))
		if i < len(s)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func parseQuantity(text string) (int, string) {
	qty, err := strconv.Atoi(text)
	if err != nil {
		return 0, "not an integer"
	}
	if qty < 0 {
		return 0, "negative quantity"
	}
	return qty, ""
}

func dropZero(entries Snapshot) Snapshot {
	out := entries[:0]
	for _, e := range entries {
		if e.Quantity > 0 {
			out = append(out, e)
		}
	}
	return out
}
