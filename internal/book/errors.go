package book

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
)

// Kinds of values the directory looks up or keeps unique.
const (
	KindContact = "contact"
	KindPhone   = "phone"
)

// ValidationError reports a rejected field value.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As to read
// the offending value and the reason.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", ErrValidation, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports a failed lookup by contact name or phone value.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Key, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateError reports a value that already exists where uniqueness is required.
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Key, ErrDuplicate)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}
