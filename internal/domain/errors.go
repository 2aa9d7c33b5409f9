// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindMapping
	KindStore
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindMapping:
		return "mapping_error"
	case KindStore:
		return "store_error"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Error is the error type every service returns. Message is meant for the
// caller; Err keeps the underlying cause for errors.Is/As.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidInput(msg string) *Error { return &Error{Kind: KindInvalidInput, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func MappingError(msg string) *Error { return &Error{Kind: KindMapping, Message: msg} }

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

// StoreError wraps a persistence failure.
func StoreError(op string, err error) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf("%s: %v", op, err), Err: err}
}

// KindOf returns the kind of err, or KindStore for anything unclassified.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStore
}

// Wrap prefixes err's message with stage while keeping its kind.
// Unclassified errors become store errors.
func Wrap(stage string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindOf(err), Message: stage + ": " + err.Error(), Err: err}
}
