package arith

import (
	"errors"
	"fmt"
)

// Kind classifies an arithmetic error.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindInvalidArgument is a negative exponent, an out-of-domain modulus or a malformed argument.
	KindInvalidArgument
	// KindDivideByZero is a zero divisor or modulus.
	KindDivideByZero
	// KindFormat is an unparseable polynomial or numeric literal.
	KindFormat
	// KindUnsupported is an operation undefined for the active coefficient type.
	KindUnsupported
	// KindArithmetic is an arithmetic inconsistency, such as a square root of a non-residue.
	KindArithmetic
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindDivideByZero:
		return "divide by zero"
	case KindFormat:
		return "format error"
	case KindUnsupported:
		return "unsupported operation"
	case KindArithmetic:
		return "arithmetic inconsistency"
	}
	return "unknown error"
}

// Error is the error type returned by every package of this module.
// Two Errors match under [errors.Is] when their kinds are equal.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

var (
	// ErrInvalidArgument matches every error of kind KindInvalidArgument.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	// ErrDivideByZero matches every error of kind KindDivideByZero.
	ErrDivideByZero = &Error{Kind: KindDivideByZero}
	// ErrFormat matches every error of kind KindFormat.
	ErrFormat = &Error{Kind: KindFormat}
	// ErrUnsupported matches every error of kind KindUnsupported.
	ErrUnsupported = &Error{Kind: KindUnsupported}
	// ErrArithmetic matches every error of kind KindArithmetic.
	ErrArithmetic = &Error{Kind: KindArithmetic}
)

// Errorf creates a new Error of the given kind for the operation op.
func Errorf(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error of the given kind caused by err.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: err.Error(), Err: err}
}

// Error returns the error message.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
