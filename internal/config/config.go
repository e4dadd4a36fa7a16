// Package config holds the configuration of the widefix command.
package config

import (
	"fmt"
	"math/rand"

	"github.com/avdva/widefix"
	"github.com/avdva/widefix/constgen"
	"github.com/avdva/widefix/fractal"
)

// Config is the root configuration.
type Config struct {
	Output    OutputConfig     `mapstructure:"output"`
	Constants []ConstantConfig `mapstructure:"constants"`
	Render    RenderConfig     `mapstructure:"render"`
}

// OutputConfig sets where generated constants go. Empty paths are skipped.
type OutputConfig struct {
	GLSL      string `mapstructure:"glsl"`
	Go        string `mapstructure:"go"`
	GoPackage string `mapstructure:"go_package"`
}

// ConstantConfig is a named constant in addition to constgen.Defaults.
type ConstantConfig struct {
	Name  string `mapstructure:"name"`
	Value string `mapstructure:"value"`
	Base  int    `mapstructure:"base"`
}

// RenderConfig describes a fractal image.
// Coordinates are decimal strings, so that they keep full precision.
type RenderConfig struct {
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	MaxIters    int    `mapstructure:"max_iters"`
	CenterX     string `mapstructure:"center_x"`
	CenterY     string `mapstructure:"center_y"`
	Scale       string `mapstructure:"scale"`
	Julia       bool   `mapstructure:"julia"`
	CRe         string `mapstructure:"c_re"`
	CIm         string `mapstructure:"c_im"`
	Workers     int    `mapstructure:"workers"`
	PaletteSize int    `mapstructure:"palette_size"`
	Seed        int64  `mapstructure:"seed"`
	Output      string `mapstructure:"output"`
}

// ConstSet returns the default constants followed by the configured ones.
func (c *Config) ConstSet() (*constgen.Set, error) {
	s := constgen.Defaults()
	for _, cc := range c.Constants {
		base := cc.Base
		if base == 0 {
			base = 10
		}
		if err := s.AddString(cc.Name, cc.Value, base); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Options converts the render section into fractal.RenderOptions.
func (r *RenderConfig) Options() (fractal.RenderOptions, error) {
	var (
		o   fractal.RenderOptions
		err error
	)
	for _, f := range []struct {
		name string
		src  string
		dst  *widefix.Fixed
	}{
		{"center_x", r.CenterX, &o.View.Center.X},
		{"center_y", r.CenterY, &o.View.Center.Y},
		{"scale", r.Scale, &o.View.Scale},
		{"c_re", r.CRe, &o.C.X},
		{"c_im", r.CIm, &o.C.Y},
	} {
		if *f.dst, err = widefix.FromString(f.src); err != nil {
			return o, fmt.Errorf("render.%s: %w", f.name, err)
		}
	}
	o.Width, o.Height = r.Width, r.Height
	o.MaxIters = r.MaxIters
	o.Julia = r.Julia
	o.Workers = r.Workers
	o.Palette = fractal.DefaultPalette
	if r.PaletteSize > 0 {
		o.Palette = fractal.RandomPalette(rand.New(rand.NewSource(r.Seed)), r.PaletteSize)
	}
	o.EndColor = fractal.DefaultEndColor
	return o, nil
}
