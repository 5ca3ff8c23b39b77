// Package hvsr talks to the external HVSR processor service. All
// signal processing happens on the far side of this interface; this
// side ships bytes and settings across and decodes the answer.
package hvsr

import (
	"context"
	"errors"
	"fmt"

	"hvsrweb/internal/model"
)

// Failure categories. Match with errors.Is; recover the processor's
// own message with errors.As on *Error.
var (
	// ErrRejectedInput means the processor refused the record or the
	// settings before computing anything.
	ErrRejectedInput = errors.New("processor rejected input")
	// ErrProcessing means the computation itself failed.
	ErrProcessing = errors.New("processing failed")
	// ErrUnavailable means the processor could not be reached or gave
	// an unusable answer.
	ErrUnavailable = errors.New("processor unavailable")
)

// Error carries the processor's verbatim code and message alongside
// the category sentinel, so handlers can surface what the processor
// said without parsing strings.
type Error struct {
	kind    error
	Status  int
	Code    string
	Message string
}

// NewError builds a categorized processor error. kind must be one of
// the sentinel categories above.
func NewError(kind error, status int, code, message string) *Error {
	return &Error{kind: kind, Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.Message)
}

func (e *Error) Unwrap() error { return e.kind }

// Processor is the external collaborator computing HVSR results.
type Processor interface {
	// Process runs one synchronous calculation. The error is one of
	// the sentinel categories above; calculations are never retried.
	Process(ctx context.Context, rec *model.Record, settings model.Settings) (*model.Result, error)
	// Ping probes the processor's health endpoint.
	Ping(ctx context.Context) error
}
