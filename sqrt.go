package widefix

// SqrtIterations is the number of Heron iterations in Sqrt.
const SqrtIterations = 8

// Sqrt returns the square root of f.
// If f < 0, Sqrt panics with ErrNegativeSqrt.
func (f Fixed) Sqrt() Fixed {
	if f.IsNegative() {
		panic(ErrNegativeSqrt)
	}
	return sqrt(f)
}

// TrySqrt is like Sqrt, but returns ErrNegativeSqrt instead of panicking.
func (f Fixed) TrySqrt() (Fixed, error) {
	if f.IsNegative() {
		return Zero, ErrNegativeSqrt
	}
	return sqrt(f), nil
}

func sqrt(a Fixed) Fixed {
	msb := a.MSB()
	if msb == -1 {
		return Zero
	}
	// half of the exponent is a guess within a factor of 2.
	res := pow2((msb-FracBits)/2 + FracBits)
	for i := 0; i < SqrtIterations; i++ {
		// (res + a/res) / 2 is (res*res + a) / (2*res), but res*res
		// overflows for a close to Max.
		res = res.Add(div(a, res)).Rsh1()
	}
	return res
}
