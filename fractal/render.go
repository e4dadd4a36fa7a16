package fractal

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// RenderOptions describe an image to render.
type RenderOptions struct {
	Width, Height int
	View          Viewport
	MaxIters      int
	// Julia selects the Julia set for C instead of the Mandelbrot set.
	Julia    bool
	C        Point
	Palette  Palette
	EndColor Color
	// Workers limits the number of rows computed concurrently,
	// 0 means runtime.GOMAXPROCS.
	Workers int
}

func (o RenderOptions) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", o.Width, o.Height)
	case o.MaxIters <= 0:
		return fmt.Errorf("invalid max iterations %d", o.MaxIters)
	case o.View.Scale.Sign() <= 0:
		return fmt.Errorf("invalid scale %v", o.View.Scale)
	case o.Workers < 0:
		return fmt.Errorf("invalid workers count %d", o.Workers)
	}
	return nil
}

// Render computes the image row by row, up to o.Workers rows at once.
// It stops early and returns ctx.Err() if ctx is done.
func Render(ctx context.Context, o RenderOptions) (*image.RGBA, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	if o.EndColor == (Color{}) {
		o.EndColor = DefaultEndColor
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < o.Height && gctx.Err() == nil; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRow(img, o, y)
			if glog.V(3) {
				glog.Infof("row %d done", y)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	glog.V(2).Infof("rendered %dx%d, max iterations %d, julia %v", o.Width, o.Height, o.MaxIters, o.Julia)
	return img, nil
}

func renderRow(img *image.RGBA, o RenderOptions, y int) {
	for x := 0; x < o.Width; x++ {
		p := o.View.PixelToPlane(x, y, o.Width, o.Height)
		var iters int
		if o.Julia {
			iters = Escape(p, o.C, o.MaxIters)
		} else {
			iters = Escape(Point{}, p, o.MaxIters)
		}
		img.SetRGBA(x, y, o.Palette.Color(iters, o.MaxIters, o.EndColor))
	}
}
