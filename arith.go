// Copyright 2020 Aleksandr Demakin. All rights reserved.

package widefix

import (
	"github.com/avdva/widefix/internal/mathutil"
)

// Add returns f + other. The result wraps around on overflow.
func (f Fixed) Add(other Fixed) (res Fixed) {
	var carry uint32
	for i := range res.data {
		res.data[i], carry = mathutil.Add32(f.data[i], other.data[i], carry)
	}
	return res
}

// Neg returns -f. Neg(Min) is Min.
func (f Fixed) Neg() (res Fixed) {
	carry := uint32(1)
	for i := range res.data {
		res.data[i], carry = mathutil.Add32(^f.data[i], 0, carry)
	}
	return res
}

// Sub returns f - other. The result wraps around on overflow.
func (f Fixed) Sub(other Fixed) Fixed {
	return f.Add(other.Neg())
}

// Abs returns |f|. Abs(Min) is Min.
func (f Fixed) Abs() Fixed {
	if f.IsNegative() {
		return f.Neg()
	}
	return f
}

// Mul returns f * other.
// The product is truncated towards zero to FracBits fractional bits, and
// its integer part wraps around on overflow.
func (f Fixed) Mul(other Fixed) Fixed {
	neg := f.IsNegative() != other.IsNegative()
	res := mulAbs(f.Abs(), other.Abs())
	if neg {
		return res.Neg()
	}
	return res
}

// mulAbs multiplies two magnitudes, treating them as unsigned numbers.
func mulAbs(a, b Fixed) (res Fixed) {
	var prod [2 * Size]uint32
	for i, x := range a.data {
		if x == 0 {
			continue
		}
		var carry uint32
		for j, y := range b.data {
			carry, prod[i+j] = mathutil.MulAdd32(x, y, prod[i+j], carry)
		}
		prod[i+Size] = carry
	}
	// drop FracBits low bits of the double-width product.
	for i := range res.data {
		res.data[i] = prod[i+fracWords] >> fracShift
		if fracShift > 0 {
			res.data[i] |= prod[i+fracWords+1] << ((wordBits - fracShift) % wordBits)
		}
	}
	return res
}
