// Copyright 2020 Aleksandr Demakin. All rights reserved.

package widefix

import (
	"fmt"
	"io"
	"math/big"

	"github.com/avdva/widefix/internal/strutil"
)

// FromString parses a decimal string, like `"-12.34e-2"`.
// Quotes and spaces around the number are ignored.
// The result is rounded to the nearest representable value.
// Errors are returned as *ParseError. For values out of range
// Max or Min is returned along with the error.
func FromString(s string) (Fixed, error) {
	neg, digits, e, err := strutil.Parse(s)
	if err != nil {
		return Zero, &ParseError{Func: "FromString", Input: s, Base: 10, Err: err}
	}
	if len(digits) == 0 {
		return Zero, nil
	}
	coeff, _ := new(big.Int).SetString(digits, 10)
	if neg {
		coeff.Neg(coeff)
	}
	res, err := fromDecimalParts(coeff, int(e))
	if err != nil {
		return res, &ParseError{Func: "FromString", Input: s, Base: 10, Err: err}
	}
	return res, nil
}

// MustFromString is like FromString, but panics on errors.
func MustFromString(s string) Fixed {
	res, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// String returns the shortest decimal representation that identifies f.
// FromString(f.String()) == f.
func (f Fixed) String() string {
	return f.BigFloat().Text('f', -1)
}

// GoString returns the decimal value followed by the raw words,
// least significant first.
func (f Fixed) GoString() string {
	return f.String() + fmt.Sprintf(" %08x", f.data)
}

// Format implements fmt.Formatter.
// 's' and 'v' print the exact value, '#v' is GoString,
// other verbs are handled as by big.Float.
func (f Fixed) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			io.WriteString(s, f.GoString())
			return
		}
		io.WriteString(s, f.String())
	case 's':
		io.WriteString(s, f.String())
	default:
		f.BigFloat().Format(s, verb)
	}
}
