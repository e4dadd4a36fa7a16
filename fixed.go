// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package widefix implements a wide signed fixed-point number.
// A Fixed is stored as Size 32-bit words in two's complement, the least
// significant word first. The top word holds the integer part (32 bits,
// including the sign), all other words hold the fraction, so the raw
// value is scaled by 2^FracBits.
//
// With the default Size of 4, a Fixed has 96 fractional bits, which makes it
// usable for deep-zoom coordinate math, where float64 runs out of precision.
// All operations return new values and wrap around on overflow.
package widefix

import (
	"github.com/avdva/widefix/internal/mathutil"
)

const (
	wordBits = 32

	// Bits is the total number of bits in a Fixed.
	Bits = Size * wordBits
	// IntBits is the number of integer bits, including the sign bit.
	IntBits = wordBits
	// FracBits is the number of fractional bits.
	FracBits = Bits - IntBits

	fracWords = FracBits / wordBits
	fracShift = FracBits % wordBits

	signBit  = 1 << (wordBits - 1)
	wordMask = 1<<wordBits - 1
)

var (
	// Zero is 0.
	Zero Fixed
	// One is 1.
	One = pow2(FracBits)
	// Two is 2.
	Two = pow2(FracBits + 1)
	// Half is 0.5.
	Half = pow2(FracBits - 1)
	// Epsilon is the smallest positive value, 2^-FracBits.
	Epsilon = pow2(0)
	// Max is the maximum possible value, 2^31 - Epsilon.
	Max = maxValue()
	// Min is the minimum possible value, -2^31.
	Min = pow2(Bits - 1)
)

// Fixed is a signed fixed-point number.
// The zero value is 0. Fixed values are comparable with ==, which is
// the same as Eq.
//
//	word:  Size-1      Size-2  ...   0
//	       ________|________|___|________
//	       siiiiiii ffffffff ... ffffffff
type Fixed struct {
	data [Size]uint32
}

// FromWords returns a value with given raw words, the least significant first.
func FromWords(words [Size]uint32) Fixed {
	return Fixed{data: words}
}

// Words returns raw words of f, the least significant first.
func (f Fixed) Words() [Size]uint32 {
	return f.data
}

func pow2(pos int) Fixed {
	var f Fixed
	if pos >= 0 && pos < Bits {
		f.data[pos/wordBits] = 1 << (pos % wordBits)
	}
	return f
}

func maxValue() Fixed {
	var f Fixed
	for i := range f.data {
		f.data[i] = wordMask
	}
	f.data[Size-1] = signBit - 1
	return f
}

// IsNegative returns true if f < 0.
func (f Fixed) IsNegative() bool {
	return f.data[Size-1]&signBit != 0
}

// IsZero returns true if f == 0.
func (f Fixed) IsZero() bool {
	return f == Zero
}

// Sign returns -1 if f < 0, 0 if f == 0, 1 if f > 0.
func (f Fixed) Sign() int {
	switch {
	case f.IsNegative():
		return -1
	case f.IsZero():
		return 0
	default:
		return 1
	}
}

// MSB returns the zero-based index of the highest set bit of f's raw words,
// or -1 if f is zero. For a negative f it is always Bits-1.
func (f Fixed) MSB() int {
	for i := Size - 1; i >= 0; i-- {
		if w := f.data[i]; w != 0 {
			return i*wordBits + mathutil.BitIndex32(w)
		}
	}
	return -1
}

// Eq returns true, if both values represent the same number.
func (f Fixed) Eq(other Fixed) bool {
	return f == other
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (f Fixed) Cmp(other Fixed) int {
	if hi, ohi := int32(f.data[Size-1]), int32(other.data[Size-1]); hi != ohi {
		if hi > ohi {
			return 1
		}
		return -1
	}
	for i := Size - 2; i >= 0; i-- {
		if w, ow := f.data[i], other.data[i]; w != ow {
			if w > ow {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Less returns a < b.
func (f Fixed) Less(other Fixed) bool {
	return f.Cmp(other) < 0
}

// LessOrEqual returns a <= b.
func (f Fixed) LessOrEqual(other Fixed) bool {
	return f.Cmp(other) <= 0
}

// Greater returns a > b.
func (f Fixed) Greater(other Fixed) bool {
	return f.Cmp(other) > 0
}

// GreaterOrEqual returns a >= b.
func (f Fixed) GreaterOrEqual(other Fixed) bool {
	return f.Cmp(other) >= 0
}
