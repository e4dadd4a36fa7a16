// Package mathutil contains word and float helpers shared by the widefix packages.
package mathutil

import (
	"math"
	"math/big"
	"math/bits"
)

const (
	float64MantBits = 52
	float64ExpMask  = 0x7FF
	float64Bias     = 1023
)

var (
	big5  = big.NewInt(5)
	big10 = big.NewInt(10)
)

// MulAdd32 returns a*b + acc + carry split into the high and the low words.
// The sum never overflows 64 bits.
func MulAdd32(a, b, acc, carry uint32) (hi, lo uint32) {
	p := uint64(a)*uint64(b) + uint64(acc) + uint64(carry)
	return uint32(p >> 32), uint32(p)
}

// Add32 returns a + b + carry and the carry-out, which is 0 or 1.
func Add32(a, b, carry uint32) (sum, carryOut uint32) {
	return bits.Add32(a, b, carry)
}

// BitIndex32 returns the zero-based index of the highest set bit in w, or -1 if w is 0.
func BitIndex32(w uint32) int {
	return bits.Len32(w) - 1
}

// SplitFloat64 decomposes a finite f into sign, an integer mantissa and
// a binary exponent, so that abs(f) == mant * 2^exp.
// mant has at most 53 significant bits and is zero only for f == 0.
func SplitFloat64(f float64) (neg bool, mant uint64, exp int) {
	b := math.Float64bits(f)
	neg = b>>63 != 0
	e := int(b>>float64MantBits) & float64ExpMask
	mant = b & (1<<float64MantBits - 1)
	if e == 0 { // subnormal
		if mant == 0 {
			return neg, 0, 0
		}
		return neg, mant, 1 - float64Bias - float64MantBits
	}
	mant |= 1 << float64MantBits
	return neg, mant, e - float64Bias - float64MantBits
}

// Pow10Big returns 10^n as a new big.Int. n must not be negative.
func Pow10Big(n int) *big.Int {
	return new(big.Int).Exp(big10, big.NewInt(int64(n)), nil)
}

// Pow5Big returns 5^n as a new big.Int. n must not be negative.
func Pow5Big(n int) *big.Int {
	return new(big.Int).Exp(big5, big.NewInt(int64(n)), nil)
}

// QuoRound returns n/d rounded to the nearest integer, halves away from zero.
// d must be positive.
func QuoRound(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	r.Abs(r).Lsh(r, 1)
	if r.Cmp(d) >= 0 {
		if n.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}
