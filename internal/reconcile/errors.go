package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError rejects a submission before anything is created or sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrEmptyReview is returned for blank submission text.
var ErrEmptyReview = &ValidationError{Message: msgEmptyReview}

// ErrSubmissionInFlight is returned when a submission is attempted while
// another one is still waiting for its result.
var ErrSubmissionInFlight = errors.New("a review is already being analyzed")

// TransportError means a capability call did not complete.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError means the analysis service answered with a failure detail.
type ServiceError struct {
	Detail string
	Err    error
}

func (e *ServiceError) Error() string { return e.Detail }
func (e *ServiceError) Unwrap() error { return e.Err }

// ClipboardError means the clipboard write failed.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string { return fmt.Sprintf("clipboard: %v", e.Err) }
func (e *ClipboardError) Unwrap() error { return e.Err }

// detailer is implemented by capability errors that carry a structured,
// human-readable failure detail.
type detailer interface {
	ErrorDetail() string
}

func classify(op string, err error) error {
	var d detailer
	if errors.As(err, &d) {
		if detail := strings.TrimSpace(d.ErrorDetail()); detail != "" {
			return &ServiceError{Detail: detail, Err: err}
		}
	}
	return &TransportError{Op: op, Err: err}
}

// userMessage picks the text shown to the user for a classified failure.
func userMessage(err error, fallback string) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Detail
	}
	return fallback
}
