// Package apperr provides the typed errors services return to handlers.
// httpkit.HandleError maps each Kind to an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation is well-formed input that breaks a field rule.
	KindValidation
	// KindUnauthorized means the dashboard session is missing or credentials are wrong.
	KindUnauthorized
	// KindConflict is a clash with stored state, e.g. a duplicate lead email.
	KindConflict
	// KindInternal is an unexpected failure whose cause is not shown to clients.
	KindInternal
)

var kindNames = map[Kind]string{
	KindUnknown:      "unknown",
	KindValidation:   "validation",
	KindUnauthorized: "unauthorized",
	KindConflict:     "conflict",
	KindInternal:     "internal",
}

var kindStatus = map[Kind]int{
	KindValidation:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindConflict:     http.StatusConflict,
	KindInternal:     http.StatusInternalServerError,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string // shown to clients
	Op      string // failing operation, for logs
	Err     error  // cause, for logs
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code for e's kind. Unknown kinds are 500.
func (e *Error) HTTPStatus() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }

// GetKind extracts the error kind from an error chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries an *Error of kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
