package errs

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind uint8

const (
	// Unknown is any failure that could not be classified.
	Unknown Kind = iota

	// Conflict covers constraint violations: duplicate unique keys,
	// missing foreign key targets, NOT NULL and CHECK failures.
	Conflict

	// NotFound is reported when a lookup that must resolve to a row
	// (e.g. category id by name) matches nothing.
	NotFound

	// ConnectionFailure means the store could not be reached or the
	// connection broke while the statement was running.
	ConnectionFailure

	// Forbidden is used by the service layer when the acting member
	// lacks the admin flag.
	Forbidden

	// Invalid is used by the service layer for rejected input, such as
	// an upload that is not a supported image.
	Invalid
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Conflict:
		return "conflict"
	case NotFound:
		return "not found"
	case ConnectionFailure:
		return "connection failure"
	case Forbidden:
		return "forbidden"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the core.
//
// Fields:
//   - Kind: the classified cause, see KindOf.
//   - Op: the operation that failed, e.g. "member.create".
//   - Err: the underlying driver or library error (may be nil).
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds an *Error. A nil err is allowed for failures detected by the
// core itself (NotFound on a lookup, Forbidden on a guard).
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
//
// This lets callers write errors.Is(err, errs.ErrNotFound) without caring
// about Op or the wrapped driver error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrConflict          = &Error{Kind: Conflict}
	ErrNotFound          = &Error{Kind: NotFound}
	ErrConnectionFailure = &Error{Kind: ConnectionFailure}
	ErrForbidden         = &Error{Kind: Forbidden}
	ErrInvalid           = &Error{Kind: Invalid}
)

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
