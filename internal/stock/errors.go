package stock

import (
	"errors"
	"fmt"
)

// ValidationError indicates an adjustment was rejected before touching state.
type ValidationError struct {
	Field   string // "item", "quantity" or "op"
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError indicates a remove targeted an item the store does not hold.
type NotFoundError struct {
	Item string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.Item)
}

// IsValidation reports whether err contains a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err contains a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
