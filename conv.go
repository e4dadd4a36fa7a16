// Copyright 2020 Aleksandr Demakin. All rights reserved.

package widefix

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/widefix/internal/mathutil"
	"github.com/avdva/widefix/internal/strutil"
)

const (
	// maxFloat is 2^31, the first float64 above Max.
	maxFloat = float64(1 << (IntBits - 1))
	minFloat = -maxFloat

	// decimal numbers below 10^minDecimalExp round to zero.
	minDecimalExp = -(FracBits*3/10 + 2)
	// decimal numbers above 10^maxDecimalExp do not fit.
	maxDecimalExp = 10
)

var (
	wrapBig   = new(big.Int).Lsh(big.NewInt(1), Bits)
	maskBig   = new(big.Int).Sub(wrapBig, big.NewInt(1))
	maxRawBig = new(big.Int).Rsh(maskBig, 1)
	minRawBig = new(big.Int).Neg(new(big.Int).Add(maxRawBig, big.NewInt(1)))

	maxIntBig = big.NewInt(math.MaxInt32)
	minIntBig = big.NewInt(math.MinInt32)
)

// FromInt64 returns v as a Fixed. Only the low IntBits of v are kept,
// so values outside of the int32 range wrap around.
func FromInt64(v int64) (res Fixed) {
	res.data[fracWords] = uint32(v)
	return res
}

// FromInt32 returns v as a Fixed.
func FromInt32(v int32) Fixed {
	return FromInt64(int64(v))
}

// FromUint32 returns v as a Fixed. Values above math.MaxInt32 wrap around.
func FromUint32(v uint32) Fixed {
	return FromInt64(int64(v))
}

// FromUint64 returns v as a Fixed. Values above math.MaxInt32 wrap around.
func FromUint64(v uint64) Fixed {
	return FromInt64(int64(v))
}

// FromFloat64 returns a value for given float64.
// Bits below Epsilon are truncated towards zero.
// Returns ErrBadFloat for infinities and not-a-numbers, and
// Max or Min with ErrRange for values out of range.
func FromFloat64(f float64) (Fixed, error) {
	switch {
	case math.IsInf(f, 0) || math.IsNaN(f):
		return Zero, ErrBadFloat
	case f >= maxFloat:
		return Max, ErrRange
	case f < minFloat:
		return Min, ErrRange
	}
	neg, mant, exp := mathutil.SplitFloat64(f)
	shift := exp + FracBits
	if shift < 0 {
		if -shift >= 64 {
			return Zero, nil
		}
		mant >>= uint(-shift)
		shift = 0
	}
	var res Fixed
	res.data[0], res.data[1] = uint32(mant), uint32(mant>>32)
	res = res.Lsh(uint(shift))
	if neg {
		return res.Neg(), nil
	}
	return res, nil
}

// MustFromFloat64 is like FromFloat64, but panics on errors.
func MustFromFloat64(f float64) Fixed {
	res, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return res
}

// FromFloat32 returns a value for given float32, see FromFloat64.
func FromFloat32(f float32) (Fixed, error) {
	return FromFloat64(float64(f))
}

// Float64 returns f as a float64. Precision may be lost.
func (f Fixed) Float64() float64 {
	neg := f.IsNegative()
	a := f.Abs()
	msb := a.MSB()
	if msb == -1 {
		return 0
	}
	shift := 0
	if msb > 63 {
		shift = msb - 63
		a = a.URsh(uint(shift))
	}
	res := math.Ldexp(float64(uint64(a.data[1])<<32|uint64(a.data[0])), shift-FracBits)
	if neg {
		return -res
	}
	return res
}

// Float32 returns f as a float32.
func (f Fixed) Float32() float32 {
	return float32(f.Float64())
}

// Int32 returns the integer part of f, rounded towards negative infinity.
func (f Fixed) Int32() int32 {
	return int32(f.data[fracWords])
}

// Raw returns the raw two's complement value of f as a big.Int,
// that is f * 2^FracBits.
func (f Fixed) Raw() *big.Int {
	var buf [Bits / 8]byte
	for i, w := range f.data {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], w)
	}
	b := new(big.Int).SetBytes(buf[:])
	if f.IsNegative() {
		b.Sub(b, wrapBig)
	}
	return b
}

// FromRaw returns a value, which raw representation is b, see Raw.
// Values outside of the range wrap around, and accurate is set to false.
func FromRaw(b *big.Int) (out Fixed, accurate bool) {
	accurate = b.Cmp(minRawBig) >= 0 && b.Cmp(maxRawBig) <= 0
	var buf [Bits / 8]byte
	new(big.Int).And(b, maskBig).FillBytes(buf[:])
	for i := range out.data {
		out.data[i] = binary.BigEndian.Uint32(buf[len(buf)-4*(i+1):])
	}
	return out, accurate
}

// BigFloat returns f as a big.Float. The conversion is exact.
func (f Fixed) BigFloat() *big.Float {
	b := new(big.Float).SetPrec(Bits).SetInt(f.Raw())
	return b.SetMantExp(b, -FracBits)
}

// Decimal returns f as a decimal.Decimal. The conversion is exact,
// the result has FracBits decimal places.
func (f Fixed) Decimal() decimal.Decimal {
	m := f.Raw()
	return decimal.NewFromBigInt(m.Mul(m, mathutil.Pow5Big(FracBits)), -FracBits)
}

// FromDecimal returns the nearest value for d.
// Returns Max or Min with ErrRange for values out of range.
func FromDecimal(d decimal.Decimal) (Fixed, error) {
	return fromDecimalParts(d.Coefficient(), int(d.Exponent()))
}

// fromDecimalParts returns the value closest to coeff * 10^exp.
func fromDecimalParts(coeff *big.Int, exp int) (Fixed, error) {
	if coeff.Sign() == 0 {
		return Zero, nil
	}
	digits := len(coeff.Text(10))
	if coeff.Sign() < 0 {
		digits--
	}
	switch {
	case digits+exp > maxDecimalExp:
		if coeff.Sign() < 0 {
			return Min, ErrRange
		}
		return Max, ErrRange
	case digits+exp < minDecimalExp:
		return Zero, nil
	}
	raw := new(big.Int).Lsh(coeff, FracBits)
	if exp >= 0 {
		raw.Mul(raw, mathutil.Pow10Big(exp))
	} else {
		raw = mathutil.QuoRound(raw, mathutil.Pow10Big(-exp))
	}
	switch {
	case raw.Cmp(maxRawBig) > 0:
		return Max, ErrRange
	case raw.Cmp(minRawBig) < 0:
		return Min, ErrRange
	}
	res, _ := FromRaw(raw)
	return res, nil
}

// Parse parses a signed integer literal in given base, like strconv.ParseInt.
// The base must be in [2, 36], and the value must fit into an int32.
// Errors are returned as *ParseError.
func Parse(s string, base int) (Fixed, error) {
	neg, digits, err := strutil.ParseRadix(s, base)
	if err != nil {
		return Zero, &ParseError{Func: "Parse", Input: s, Base: base, Err: err}
	}
	v := new(big.Int)
	if len(digits) > 0 {
		v.SetString(digits, base)
	}
	if neg {
		v.Neg(v)
	}
	if v.Cmp(minIntBig) < 0 || v.Cmp(maxIntBig) > 0 {
		return Zero, &ParseError{Func: "Parse", Input: s, Base: base, Err: ErrRange}
	}
	return FromInt64(v.Int64()), nil
}

// MustParse is like Parse, but panics on errors.
func MustParse(s string, base int) Fixed {
	res, err := Parse(s, base)
	if err != nil {
		panic(err)
	}
	return res
}
