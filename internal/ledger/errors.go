package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an operation references an id the ledger
	// does not hold. Callers holding stale references may ignore it.
	ErrNotFound = errors.New("item not found")

	// ErrAmbiguous is returned by Lookup when an id prefix matches several items.
	ErrAmbiguous = errors.New("ambiguous id prefix")

	// ErrInvalid matches every *ValidationError via errors.Is.
	ErrInvalid = errors.New("invalid input")
)

// ValidationError reports rejected user input, keyed by field name.
// No state is mutated when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := e.SortedFields()
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(msgs, "; ")
}

// SortedFields returns the rejected field names in order.
func (e *ValidationError) SortedFields() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Is makes errors.Is(err, ErrInvalid) true for validation errors.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
