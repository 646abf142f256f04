package homework

import (
	"errors"
	"fmt"
)

// ErrMissingHomeworksKey is returned when a response object has no
// "homeworks" key. Callers treat it as a quiet, non-notified iteration.
var ErrMissingHomeworksKey = errors.New(`response has no "homeworks" key`)

// MalformedResponseError reports a payload whose shape does not match the
// documented API.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// MissingFieldError reports a submission record without a required key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework record has no %q field", e.Field)
}

// UnknownStatusError reports a status outside the verdict table.
type UnknownStatusError struct {
	Status any
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %v", e.Status)
}
