package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an update or delete references an id that
	// does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached. Callers must treat it as "no schedule data available", never
	// as an empty schedule.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports required fields that are missing or out of their
// declared domain. It blocks the write and is surfaced to the caller with
// the offending field names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}
