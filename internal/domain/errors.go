package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogLoad covers fetch and parse failures of the catalogue
	// document. Fatal for the page load; no retry.
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrMalformedCatalog marks schema violations in otherwise valid JSON.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrNotFound is returned when a type/color combination or cart does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoProductSelected blocks summary generation before a type and
	// color are both chosen.
	ErrNoProductSelected = errors.New("no product selected")

	// ErrNoItemsSelected blocks summary generation when a product is
	// chosen but every quantity is zero.
	ErrNoItemsSelected = errors.New("no items selected")

	// ErrInvalidQuantity rejects negative or non-integer quantity input.
	// The prior value is retained.
	ErrInvalidQuantity = errors.New("quantity must be a non-negative integer")

	// ErrFieldRequired rejects an empty customer field after trimming.
	ErrFieldRequired = errors.New("required field is empty")

	// ErrInvalidContact rejects contact numbers that are not exactly ten digits.
	ErrInvalidContact = errors.New("contact number must be exactly 10 digits")
)

// FieldError attaches the offending input field to a validation failure so
// the surface can name it in the user-visible prompt.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }

func (e *FieldError) Unwrap() error { return e.Err }

// IsValidation distinguishes recoverable input rejections from
// infrastructure failures.
func IsValidation(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return true
	}
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidContact) ||
		errors.Is(err, ErrFieldRequired)
}
