package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidDuration = errors.New("service duration must be positive")

// ValidationError covers malformed or logically inconsistent input:
// missing client identification, start >= end, non-positive duration.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing service, user or appointment reference.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ConflictError carries the winning appointment so callers can build a
// human-readable rejection message.
type ConflictError struct {
	Winner  *Contender
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	ok := errors.As(err, &nf)
	return nf, ok
}

func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
