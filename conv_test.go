package widefix

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		v   Fixed
		err error
	}{
		{0, Zero, nil},
		{math.Copysign(0, -1), Zero, nil},
		{1, One, nil},
		{-1, One.Neg(), nil},
		{0.5, Half, nil},
		{2, Two, nil},
		{math.Ldexp(1, -FracBits), Epsilon, nil},
		{math.Ldexp(1, -FracBits-1), Zero, nil},
		{math.SmallestNonzeroFloat64, Zero, nil},
		{-maxFloat, Min, nil},
		{maxFloat, Max, ErrRange},
		{math.MaxFloat64, Max, ErrRange},
		{-maxFloat - 1, Min, ErrRange},
		{math.Inf(1), Zero, ErrBadFloat},
		{math.Inf(-1), Zero, ErrBadFloat},
		{math.NaN(), Zero, ErrBadFloat},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromFloat64(test.f)
			if test.err == nil {
				a.NoError(err)
			} else {
				a.ErrorIs(err, test.err)
			}
			a.Equal(test.v, v)
		})
	}
}

func TestFromFloat32(t *testing.T) {
	a := assert.New(t)
	v, err := FromFloat32(-2.75)
	a.NoError(err)
	a.Equal(mustFloat(-2.75), v)
	a.Equal(float32(-2.75), v.Float32())
	a.Panics(func() {
		MustFromFloat64(math.NaN())
	})
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Fixed
		f float64
	}{
		{Zero, 0},
		{One, 1},
		{One.Neg(), -1},
		{Half, 0.5},
		{Epsilon, math.Ldexp(1, -FracBits)},
		{Epsilon.Neg(), -math.Ldexp(1, -FracBits)},
		{Min, -maxFloat},
		{Max, maxFloat},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.f, test.v.Float64())
		})
	}
}

func TestFloat64Fuzz(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < fuzzIterations; i++ {
		f := math.Ldexp(globalRNG.Float64(), globalRNG.Intn(50)-20)
		if globalRNG.Intn(2) == 0 {
			f = -f
		}
		v, err := FromFloat64(f)
		if !a.NoError(err) || !a.Equal(f, v.Float64(), "%v", f) {
			return
		}
		x := randFixed(globalRNG)
		if x.IsZero() {
			continue
		}
		expected, _ := x.BigFloat().Float64()
		if !a.InEpsilon(expected, x.Float64(), 1e-15) {
			return
		}
	}
}

func TestFromInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(Zero, FromInt64(0))
	a.Equal(One, FromInt32(1))
	a.Equal(mustFloat(-7), FromInt64(-7))
	a.Equal(mustFloat(12345), FromUint32(12345))
	a.Equal(mustFloat(12345), FromUint64(12345))
	a.Equal(Min, FromInt32(math.MinInt32))
	a.Equal(Max.Floor(), FromInt32(math.MaxInt32))
	// only IntBits low bits are kept.
	a.Equal(Min, FromUint32(1<<31))
	a.Equal(FromInt64(5), FromInt64(1<<32+5))
	a.Equal(FromInt64(-1), FromUint64(math.MaxUint64))
}

func TestRaw(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		raw      *big.Int
		v        Fixed
		accurate bool
	}{
		{big.NewInt(0), Zero, true},
		{big.NewInt(1), Epsilon, true},
		{big.NewInt(-1), Epsilon.Neg(), true},
		{maxRawBig, Max, true},
		{minRawBig, Min, true},
		{new(big.Int).Add(maxRawBig, big.NewInt(1)), Min, false},
		{new(big.Int).Sub(minRawBig, big.NewInt(1)), Max, false},
		{new(big.Int).Lsh(big.NewInt(3), Bits), Zero, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, accurate := FromRaw(test.raw)
			a.Equal(test.accurate, accurate)
			a.Equal(test.v, v)
			if accurate {
				a.Equal(0, test.raw.Cmp(v.Raw()))
			}
		})
	}
}

func TestBigFloat(t *testing.T) {
	a := assert.New(t)
	f, acc := mustFloat(-2.625).BigFloat().Float64()
	a.Equal(-2.625, f)
	a.Equal(big.Exact, acc)
	a.Equal(uint(Bits), Max.BigFloat().Prec())
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Fixed
		str string
	}{
		{Zero, "0"},
		{One, "1"},
		{mustFloat(1.5), "1.5"},
		{mustFloat(-2.625), "-2.625"},
		{Min, "-2147483648"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := test.v.Decimal()
			a.True(d.Equal(decimal.RequireFromString(test.str)), "%s != %s", d, test.str)
			v, err := FromDecimal(d)
			a.NoError(err)
			a.Equal(test.v, v)
		})
	}
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d   decimal.Decimal
		v   Fixed
		err error
	}{
		{decimal.Zero, Zero, nil},
		{decimal.New(25, -1), mustFloat(2.5), nil},
		{decimal.New(-3, 2), FromInt64(-300), nil},
		{decimal.New(1, -40), Zero, nil},
		{decimal.New(3, 10), Max, ErrRange},
		{decimal.New(-3, 10), Min, ErrRange},
		{decimal.New(2147483648, 0), Max, ErrRange},
		{decimal.New(-2147483648, 0), Min, nil},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromDecimal(test.d)
			if test.err == nil {
				a.NoError(err)
			} else {
				a.ErrorIs(err, test.err)
			}
			a.Equal(test.v, v)
		})
	}
}

func TestDecimalFuzz(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < fuzzIterations; i++ {
		x := randFixed(globalRNG)
		v, err := FromDecimal(x.Decimal())
		if !a.NoError(err) || !a.Equal(x, v) {
			return
		}
		v, accurate := FromRaw(x.Raw())
		if !a.True(accurate) || !a.Equal(x, v) {
			return
		}
	}
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		base int
		v    Fixed
		err  error
		str  string
	}{
		{"0", 10, Zero, nil, ""},
		{"-0", 10, Zero, nil, ""},
		{"+42", 10, FromInt64(42), nil, ""},
		{"ff", 16, FromInt64(255), nil, ""},
		{"-FF", 16, FromInt64(-255), nil, ""},
		{"z", 36, FromInt64(35), nil, ""},
		{"-101", 2, FromInt64(-5), nil, ""},
		{"7fffffff", 16, FromInt64(math.MaxInt32), nil, ""},
		{"-80000000", 16, Min, nil, ""},
		{"80000000", 16, Zero, ErrRange, `widefix.Parse: parsing "80000000" in base 16: value out of range`},
		{"", 10, Zero, ErrEmptyInput, `widefix.Parse: parsing "" in base 10: empty input`},
		{"-", 10, Zero, ErrEmptyInput, ""},
		{"12", 1, Zero, ErrInvalidBase, `widefix.Parse: parsing "12" in base 1: invalid base 1`},
		{"12", 37, Zero, ErrInvalidBase, ""},
		{"1z", 10, Zero, ErrInvalidDigit, `widefix.Parse: parsing "1z" in base 10: unexpected symbol 'z' at pos 2`},
		{" 1", 10, Zero, ErrInvalidDigit, ""},
		{"1.5", 10, Zero, ErrInvalidDigit, ""},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := Parse(test.s, test.base)
			a.Equal(test.v, v)
			if test.err == nil {
				a.NoError(err)
				a.Equal(v, MustParse(test.s, test.base))
				return
			}
			a.ErrorIs(err, test.err)
			var pe *ParseError
			if a.ErrorAs(err, &pe) {
				a.Equal("Parse", pe.Func)
				a.Equal(test.s, pe.Input)
				a.Equal(test.base, pe.Base)
			}
			if len(test.str) > 0 {
				a.EqualError(err, test.str)
			}
			a.Panics(func() {
				MustParse(test.s, test.base)
			})
		})
	}
}
