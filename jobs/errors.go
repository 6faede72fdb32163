package jobs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no job exists for the requested id.
	ErrNotFound = errors.New("job not found")

	// ErrDuplicateJob is returned when a create collides with an existing
	// (title, company, location) fingerprint.
	ErrDuplicateJob = errors.New("job already exists")

	// ErrInvalidDateFormat is returned for unparsable posting dates.
	ErrInvalidDateFormat = errors.New("invalid date format, use ISO 8601 (e.g. 2024-01-01T10:30:00)")
)

// MissingFieldsError reports every empty required field at once.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing or empty required fields: %s", strings.Join(e.Fields, ", "))
}

// FieldTooLongError reports a field exceeding its length limit.
type FieldTooLongError struct {
	Field string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s exceeds maximum length of %d characters", e.Field, e.Max)
}

// InvalidJobTypeError reports a job type outside the allowed set.
type InvalidJobTypeError struct {
	Value string
}

func (e *InvalidJobTypeError) Error() string {
	return fmt.Sprintf("invalid job_type %q, allowed values: %s", e.Value, strings.Join(AllowedJobTypes, ", "))
}

// StorageError wraps infrastructure failures so callers can surface a
// generic server error without leaking internals.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
