package constants

import (
	"errors"
	"fmt"
)

// Kind classifies an error without binding it to any transport layer.
// The API error handler maps kinds to HTTP statuses at the edge.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindDivideByZero
	KindMissingScore
	KindInvariant
	KindBadInput
	KindUnauthorized
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindDivideByZero:
		return "divide_by_zero"
	case KindMissingScore:
		return "missing_score"
	case KindInvariant:
		return "invariant_violation"
	case KindBadInput:
		return "bad_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// CodedError is an error tagged with a Kind.
type CodedError struct {
	kind Kind
	msg  string
	err  error
}

func (e *CodedError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *CodedError) Kind() Kind { return e.kind }

func (e *CodedError) Unwrap() error { return e.err }

// Is makes two coded errors match when their kinds match, so
// errors.Is(err, constants.ErrDBNotFound) works across wrapping.
func (e *CodedError) Is(target error) bool {
	var ce *CodedError
	if errors.As(target, &ce) {
		return e.kind == ce.kind && (ce.msg == "" || ce.msg == e.msg)
	}
	return false
}

func newError(kind Kind, format string, args ...any) *CodedError {
	return &CodedError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *CodedError {
	return newError(KindNotFound, format, args...)
}

func Conflict(format string, args ...any) *CodedError {
	return newError(KindConflict, format, args...)
}

func DivideByZero(format string, args ...any) *CodedError {
	return newError(KindDivideByZero, format, args...)
}

func MissingScore(format string, args ...any) *CodedError {
	return newError(KindMissingScore, format, args...)
}

func Invariant(format string, args ...any) *CodedError {
	return newError(KindInvariant, format, args...)
}

func BadInput(format string, args ...any) *CodedError {
	return newError(KindBadInput, format, args...)
}

func Unauthorized(format string, args ...any) *CodedError {
	return newError(KindUnauthorized, format, args...)
}

func RateLimited(format string, args ...any) *CodedError {
	return newError(KindRateLimited, format, args...)
}

func Internal(format string, args ...any) *CodedError {
	return newError(KindInternal, format, args...)
}

// Wrap keeps the original error reachable through errors.Unwrap.
func Wrap(kind Kind, err error, format string, args ...any) *CodedError {
	return &CodedError{kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf walks the wrap chain and returns the kind of the first
// CodedError found, or KindInternal when there is none.
func KindOf(err error) Kind {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.kind
	}
	return KindInternal
}

// ErrDBNotFound is what the store returns for an absent row; services
// translate it into domain-specific NotFound errors.
var ErrDBNotFound = &CodedError{kind: KindNotFound, msg: "not found"}

var ErrUnauthorized = &CodedError{kind: KindUnauthorized, msg: "unauthorized"}
