package fractal

import "github.com/avdva/widefix"

var bailout = widefix.FromInt64(4)

// Escape iterates z = z*z + c and returns the number of iterations made
// before |z|^2 exceeded 4, or maxIters if it never did.
// Mandelbrot sets start from z = 0 with c at the pixel, Julia sets start
// from z at the pixel with a fixed c.
func Escape(z, c Point, maxIters int) int {
	for i := 0; i < maxIters; i++ {
		x2, y2 := z.X.Mul(z.X), z.Y.Mul(z.Y)
		if x2.Add(y2).Greater(bailout) {
			return i
		}
		z = Point{
			X: x2.Sub(y2).Add(c.X),
			Y: z.X.Mul(z.Y).Lsh1().Add(c.Y),
		}
	}
	return maxIters
}
