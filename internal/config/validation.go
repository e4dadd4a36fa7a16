package config

import (
	"fmt"

	"github.com/avdva/widefix/internal/strutil"
)

// Validate checks the whole configuration.
func Validate(c *Config) error {
	for i, cc := range c.Constants {
		if cc.Base != 0 && (cc.Base < strutil.MinBase || cc.Base > strutil.MaxBase) {
			return fmt.Errorf("constants[%d]: invalid base %d", i, cc.Base)
		}
	}
	if _, err := c.ConstSet(); err != nil {
		return fmt.Errorf("constants: %w", err)
	}
	if err := c.Render.validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (r *RenderConfig) validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", r.Width, r.Height)
	case r.MaxIters <= 0:
		return fmt.Errorf("invalid max_iters %d", r.MaxIters)
	case r.Workers < 0:
		return fmt.Errorf("invalid workers %d", r.Workers)
	case r.PaletteSize < 0:
		return fmt.Errorf("invalid palette_size %d", r.PaletteSize)
	}
	o, err := r.Options()
	if err != nil {
		return err
	}
	if o.View.Scale.Sign() <= 0 {
		return fmt.Errorf("scale must be positive, got %v", o.View.Scale)
	}
	return nil
}
