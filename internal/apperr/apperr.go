// Package apperr defines the error kinds surfaced at the request boundary.
// Handlers map kinds to HTTP statuses; anything without a kind is a server error.
package apperr

import "errors"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// KindInvalid marks a validation failure rejected before any write.
	KindInvalid Kind = iota + 1
	// KindNotFound marks an update/delete against a nonexistent id.
	KindNotFound
	// KindConflict marks a uniqueness violation.
	KindConflict
)

// Error carries a kind and a user-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Invalid builds a validation error.
func Invalid(msg string) error { return &Error{Kind: KindInvalid, Message: msg} }

// NotFound builds a not-found error.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// Conflict builds a conflict error.
func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

// KindOf returns the kind of err, or 0 when err has none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
