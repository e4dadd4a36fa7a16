// Package fractal computes escape-time fractals in widefix arithmetic.
// It mirrors the data a compute shader gets: the viewport as raw words
// packed into a push constant block, and a color palette.
package fractal

import (
	"errors"

	"github.com/avdva/widefix"
)

// ErrBadZoom is returned for non-positive zoom factors.
var ErrBadZoom = errors.New("zoom factor must be positive")

// Point is a point on the complex plane, X is the real part.
type Point struct {
	X, Y widefix.Fixed
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X.Add(other.X), Y: p.Y.Add(other.Y)}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X.Sub(other.X), Y: p.Y.Sub(other.Y)}
}

// Viewport maps image pixels to the plane.
// Scale is the size of a pixel in plane units, Center is the plane point
// in the middle of the image. The Y axis points up.
type Viewport struct {
	Center Point
	Scale  widefix.Fixed
}

// PixelToPlane returns the plane point for the center of pixel (px, py)
// of a w x h image.
func (v Viewport) PixelToPlane(px, py, w, h int) Point {
	// (2*px + 1 - w) / 2 is the distance from the image center in pixels.
	dx := widefix.FromInt64(int64(2*px + 1 - w)).Rsh1()
	dy := widefix.FromInt64(int64(h - 2*py - 1)).Rsh1()
	return Point{
		X: v.Center.X.Add(dx.Mul(v.Scale)),
		Y: v.Center.Y.Add(dy.Mul(v.Scale)),
	}
}

// ZoomAt magnifies the view by factor, keeping the plane point under
// pixel (px, py) in place. Factors below one zoom out.
func (v Viewport) ZoomAt(px, py, w, h int, factor widefix.Fixed) (Viewport, error) {
	if factor.Sign() <= 0 {
		return v, ErrBadZoom
	}
	anchor := v.PixelToPlane(px, py, w, h)
	offset := v.Center.Sub(anchor)
	return Viewport{
		Center: anchor.Add(Point{X: offset.X.Div(factor), Y: offset.Y.Div(factor)}),
		Scale:  v.Scale.Div(factor),
	}, nil
}

// Pan moves the view by (dx, dy) pixels. Positive dy moves the view down.
func (v Viewport) Pan(dx, dy int) Viewport {
	v.Center.X = v.Center.X.Add(widefix.FromInt64(int64(dx)).Mul(v.Scale))
	v.Center.Y = v.Center.Y.Sub(widefix.FromInt64(int64(dy)).Mul(v.Scale))
	return v
}
