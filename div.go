// Copyright 2020 Aleksandr Demakin. All rights reserved.

package widefix

const (
	// DivIterations is the number of Goldschmidt iterations in Div.
	// The seed is good to about 4 bits, and every iteration doubles that,
	// so 6 iterations cover up to 256 fractional bits.
	DivIterations = 6
	// InvIterations is the number of Newton-Raphson iterations in Inv.
	// The power-of-two seed is good to 1 bit, 8 iterations cover 256 bits.
	InvIterations = 8

	// DivSeedOffset and DivSeedSlope define the linear approximation
	// 1/d ~ DivSeedOffset - DivSeedSlope*d, valid for d in [0.5, 1).
	DivSeedOffset = 2.82352941176
	DivSeedSlope  = 1.88235294118
)

var (
	divSeedOffset = MustFromFloat64(DivSeedOffset)
	divSeedSlope  = MustFromFloat64(DivSeedSlope)
)

// Div returns f / other using Goldschmidt's algorithm.
// The quotient is exact to a few units in the last place relative to its magnitude.
// If other == 0, Div panics with ErrDivisionByZero.
func (f Fixed) Div(other Fixed) Fixed {
	if other.IsZero() {
		panic(ErrDivisionByZero)
	}
	return div(f, other)
}

// TryDiv is like Div, but returns ErrDivisionByZero instead of panicking.
func (f Fixed) TryDiv(other Fixed) (Fixed, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return div(f, other), nil
}

func div(n, d Fixed) Fixed {
	neg := n.IsNegative() != d.IsNegative()
	n, d = n.Abs(), d.Abs()

	msb := d.MSB()
	if msb == -1 {
		return Zero
	}

	// scale both n and d, so that d is in [0.5, 1).
	// magnitudes are unsigned here, Abs(Min) has the top bit set.
	if offset := msb + 1 - FracBits; offset > 0 {
		n, d = n.URsh(uint(offset)), d.URsh(uint(offset))
	} else {
		n, d = n.Lsh(uint(-offset)), d.Lsh(uint(-offset))
	}

	f := divSeedOffset.Sub(divSeedSlope.Mul(d))
	for i := 0; i < DivIterations; i++ {
		n = f.Mul(n)
		d = f.Mul(d)
		f = Two.Sub(d)
	}

	if neg {
		return n.Neg()
	}
	return n
}

// Inv returns 1 / f using Newton-Raphson iterations.
// Inv(0) is 0. If 1/|f| does not fit the integer part, Inv returns Max or Min.
func (f Fixed) Inv() Fixed {
	return inv(f)
}

// TryInv is like Inv, but returns ErrDivisionByZero for f == 0.
func (f Fixed) TryInv() (Fixed, error) {
	if f.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return inv(f), nil
}

func inv(a Fixed) Fixed {
	if a == Min { // Abs(Min) is negative.
		return pow2(FracBits - IntBits + 1).Neg()
	}
	neg := a.IsNegative()
	a = a.Abs()

	msb := a.MSB()
	if msb == -1 {
		return Zero
	}
	guess := 2*FracBits - (msb + 1)
	if guess >= Bits-1 {
		if neg {
			return Min
		}
		return Max
	}

	res := pow2(guess)
	for i := 0; i < InvIterations; i++ {
		res = res.Mul(Two.Sub(a.Mul(res)))
	}

	if neg {
		return res.Neg()
	}
	return res
}

// Floor returns the greatest integer value less than or equal to f.
// It clears all fractional bits, which rounds negative values towards negative infinity.
func (f Fixed) Floor() Fixed {
	for i := 0; i < fracWords; i++ {
		f.data[i] = 0
	}
	f.data[fracWords] &= ^uint32(0) << fracShift
	return f
}

// Rem returns f - Floor(f/other)*other.
// Unlike Go's % operator, the quotient is rounded towards negative infinity,
// so the result has the sign of other.
// If other == 0, Rem panics with ErrDivisionByZero.
func (f Fixed) Rem(other Fixed) Fixed {
	_, rem := f.DivMod(other)
	return rem
}

// TryRem is like Rem, but returns ErrDivisionByZero instead of panicking.
func (f Fixed) TryRem(other Fixed) (Fixed, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return f.Rem(other), nil
}

// DivMod returns such quo and rem, that f = other * quo + rem, where quo = Floor(f/other).
// The identity is exact, as rem is computed from the same product.
// rem has the sign of other and |rem| < |other|.
// If other == 0, DivMod panics with ErrDivisionByZero.
func (f Fixed) DivMod(other Fixed) (quo, rem Fixed) {
	quo = f.Div(other).Floor()
	rem = f.Sub(quo.Mul(other))
	// Div may be a few ulps off, which moves an exact quotient across an integer.
	for i := 0; i < 2; i++ {
		switch {
		case rem.Sign()*other.Sign() < 0:
			quo = quo.Sub(One)
		case other.Sign() > 0 && rem.GreaterOrEqual(other), other.Sign() < 0 && rem.LessOrEqual(other):
			quo = quo.Add(One)
		default:
			return quo, rem
		}
		rem = f.Sub(quo.Mul(other))
	}
	return quo, rem
}
