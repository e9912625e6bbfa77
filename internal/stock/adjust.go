package stock

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op names an adjustment operation.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
)

// Adjustment is a loosely typed add or remove request, as decoded from a
// batch file. Item and Qty are checked for their dynamic type and never
// coerced: a numeric item or a string quantity is rejected.
type Adjustment struct {
	Op   Op  `yaml:"op" json:"op"`
	Item any `yaml:"item" json:"item"`
	Qty  any `yaml:"qty" json:"qty"`
}

// Apply validates a and dispatches it to Add or Remove.
func (s *Store) Apply(a Adjustment) Result {
	item, itemErr := itemValue(a.Item)
	if itemErr == nil && strings.TrimSpace(item) == "" {
		itemErr = &ValidationError{Field: "item", Message: "must be a non-empty string"}
	}
	qty, qtyErr := qtyValue(a.Qty)
	if err := errors.Join(itemErr, qtyErr); err != nil {
		if itemErr != nil {
			item = fmt.Sprint(a.Item)
		}
		return s.reject(item, qty, err)
	}

	switch Op(strings.ToLower(strings.TrimSpace(string(a.Op)))) {
	case OpAdd:
		return s.Add(item, qty)
	case OpRemove:
		return s.Remove(item, qty)
	default:
		return s.reject(item, qty, &ValidationError{
			Field:   "op",
			Message: fmt.Sprintf("%q is not one of add, remove", a.Op),
		})
	}
}

// ParseQuantity parses a decimal integer quantity such as a CLI argument.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Field: "quantity", Message: fmt.Sprintf("%q is not an integer", s)}
	}
	return n, nil
}

func itemValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: "item", Message: fmt.Sprintf("%v (%T) must be a non-empty string", v, v)}
	}
	return s, nil
}

func qtyValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case uint:
		if n <= math.MaxInt {
			return int(n), nil
		}
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		if uint64(n) <= math.MaxInt {
			return int(n), nil
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n), nil
		}
	case json.Number:
		if i, err := strconv.Atoi(n.String()); err == nil {
			return i, nil
		}
	}
	return 0, &ValidationError{Field: "quantity", Message: fmt.Sprintf("%v (%T) is not an integer", v, v)}
}
