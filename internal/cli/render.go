package cli

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/avdva/widefix"
	"github.com/avdva/widefix/fractal"
	"github.com/avdva/widefix/internal/config"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		flags          config.RenderConfig
		zoom           string
		pushConstsPath string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fractal into a PNG file",
		Long: `Render the Mandelbrot set or a Julia set with widefix arithmetic.
Flags override the render section of the config file.
--push-constants also writes the shader parameter block for the same view.`,
		Example: `  widefix render --center-x -0.743643887037158704752191506114774 --center-y 0.131825904205311970493132056385139 --scale 1e-20 --iters 2000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			r := &cfg.Render
			overrideRender(cmd, r, &flags)
			if err := config.Validate(cfg); err != nil {
				return err
			}
			o, err := r.Options()
			if err != nil {
				return err
			}
			if zoom != "" {
				factor, err := widefix.FromString(zoom)
				if err != nil {
					return fmt.Errorf("--zoom: %w", err)
				}
				if factor.Sign() <= 0 {
					return fmt.Errorf("--zoom %s: %w", zoom, fractal.ErrBadZoom)
				}
				o.View.Scale = o.View.Scale.Div(factor)
			}

			if pushConstsPath != "" {
				data, err := fractal.NewPushConstants(o).MarshalBinary()
				if err != nil {
					return err
				}
				err = writeOutput(cmd.OutOrStdout(), pushConstsPath, func(w io.Writer) error {
					_, err := w.Write(data)
					return err
				})
				if err != nil {
					return err
				}
				glog.Infof("wrote %d bytes of push constants to %s", len(data), pushConstsPath)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			start := time.Now()
			img, err := fractal.Render(ctx, o)
			if err != nil {
				return err
			}
			err = writeOutput(cmd.OutOrStdout(), r.Output, func(w io.Writer) error {
				return png.Encode(w, img)
			})
			if err != nil {
				return err
			}
			glog.Infof("wrote %s (%dx%d) in %v", r.Output, o.Width, o.Height, time.Since(start))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.Width, "width", 0, "image width")
	f.IntVar(&flags.Height, "height", 0, "image height")
	f.IntVar(&flags.MaxIters, "iters", 0, "maximum number of iterations")
	f.StringVar(&flags.CenterX, "center-x", "", "real part of the image center")
	f.StringVar(&flags.CenterY, "center-y", "", "imaginary part of the image center")
	f.StringVar(&flags.Scale, "scale", "", "pixel size in plane units")
	f.BoolVar(&flags.Julia, "julia", false, "render the Julia set for --c-re, --c-im")
	f.StringVar(&flags.CRe, "c-re", "", "real part of the Julia parameter")
	f.StringVar(&flags.CIm, "c-im", "", "imaginary part of the Julia parameter")
	f.IntVar(&flags.Workers, "workers", 0, "rows computed concurrently, 0 means GOMAXPROCS")
	f.IntVar(&flags.PaletteSize, "palette-size", 0, "use a random palette of this size")
	f.Int64Var(&flags.Seed, "seed", 0, "random palette seed")
	f.StringVarP(&flags.Output, "output", "o", "", `PNG output path, "-" for stdout`)
	f.StringVar(&zoom, "zoom", "", "magnify the view around its center by this factor")
	f.StringVar(&pushConstsPath, "push-constants", "", "also write the shader push constant block to this path")
	return cmd
}

// overrideRender copies the flags set on the command line over r.
func overrideRender(cmd *cobra.Command, r, flags *config.RenderConfig) {
	changed := cmd.Flags().Changed
	for _, o := range []struct {
		flag string
		set  func()
	}{
		{"width", func() { r.Width = flags.Width }},
		{"height", func() { r.Height = flags.Height }},
		{"iters", func() { r.MaxIters = flags.MaxIters }},
		{"center-x", func() { r.CenterX = flags.CenterX }},
		{"center-y", func() { r.CenterY = flags.CenterY }},
		{"scale", func() { r.Scale = flags.Scale }},
		{"julia", func() { r.Julia = flags.Julia }},
		{"c-re", func() { r.CRe = flags.CRe }},
		{"c-im", func() { r.CIm = flags.CIm }},
		{"workers", func() { r.Workers = flags.Workers }},
		{"palette-size", func() { r.PaletteSize = flags.PaletteSize }},
		{"seed", func() { r.Seed = flags.Seed }},
		{"output", func() { r.Output = flags.Output }},
	} {
		if changed(o.flag) {
			o.set()
		}
	}
}
