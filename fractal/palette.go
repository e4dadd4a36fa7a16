package fractal

import (
	"image/color"
	"math"
	"math/rand"
)

// Color is an RGBA color with components in [0, 1], as the shader sees it.
type Color [4]float32

// Palette is a list of colors for escaped points.
type Palette []Color

var (
	// DefaultPalette is the rainbow palette.
	DefaultPalette = Palette{
		{1, 0, 0, 1},
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{0, 1, 1, 1},
		{0, 0, 1, 1},
		{1, 0, 1, 1},
	}
	// DefaultEndColor is the color of points, which never escape.
	DefaultEndColor = Color{0, 0, 0, 1}
)

// RandomPalette returns n random opaque colors.
func RandomPalette(rng *rand.Rand, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		p[i] = Color{rng.Float32(), rng.Float32(), rng.Float32(), 1}
	}
	return p
}

// Color returns the color for a point, which escaped after iter iterations.
// Points with iter >= maxIters get end. Colors are interpolated along
// the palette, so the first iteration gets p[0], and the last one gets p[len(p)-1].
func (p Palette) Color(iter, maxIters int, end Color) color.RGBA {
	if iter >= maxIters || len(p) == 0 {
		return end.ToRGBA()
	}
	if len(p) == 1 || maxIters <= 1 {
		return p[0].ToRGBA()
	}
	pos := float32(iter) / float32(maxIters-1) * float32(len(p)-1)
	idx := int(pos)
	if idx >= len(p)-1 {
		return p[len(p)-1].ToRGBA()
	}
	return lerp(p[idx], p[idx+1], pos-float32(idx)).ToRGBA()
}

// ToRGBA converts c to 8-bit channels.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

func lerp(a, b Color, t float32) (res Color) {
	for i := range res {
		res[i] = a[i] + (b[i]-a[i])*t
	}
	return res
}
