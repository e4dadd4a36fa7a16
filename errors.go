package widefix

import (
	"errors"
	"fmt"

	"github.com/avdva/widefix/internal/strutil"
)

var (
	// ErrDivisionByZero is returned (or used as a panic value) when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSqrt is returned (or used as a panic value) for a square root of a negative number.
	ErrNegativeSqrt = errors.New("square root of a negative number")
	// ErrRange is returned when a value does not fit into a Fixed.
	ErrRange = errors.New("value out of range")
	// ErrBadFloat is returned for infinities and not-a-numbers.
	ErrBadFloat = errors.New("bad float number")

	// ErrEmptyInput is the kind of ParseError for a string without digits.
	ErrEmptyInput = strutil.ErrEmptyInput
	// ErrInvalidDigit is the kind of ParseError for an unexpected symbol.
	ErrInvalidDigit = strutil.ErrInvalidDigit
	// ErrInvalidBase is the kind of ParseError for an unsupported radix.
	ErrInvalidBase = strutil.ErrInvalidBase
)

// ParseError records a failed conversion from text.
type ParseError struct {
	Func  string // the failing function (Parse, FromString)
	Input string // the input
	Base  int    // the radix, 10 for decimal strings
	Err   error  // the reason, see ErrEmptyInput, ErrInvalidDigit, ErrInvalidBase, ErrRange
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("widefix.%s: parsing %q in base %d: %v", e.Func, e.Input, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Pos returns the 1-based position of an invalid symbol, if the error has one.
func (e *ParseError) Pos() (int, bool) {
	return strutil.Pos(e.Err)
}
