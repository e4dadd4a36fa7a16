package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the config,
// like WIDEFIX_RENDER_WIDTH for render.width.
const EnvPrefix = "WIDEFIX"

// Load loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file, if path is not empty (yaml, toml or json)
// 3. Environment variables (WIDEFIX_ prefix)
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// setDefaults sets values used when neither the file nor the environment has them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.glsl", "")
	v.SetDefault("output.go", "")
	v.SetDefault("output.go_package", "shaderconst")

	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 600)
	v.SetDefault("render.max_iters", 500)
	v.SetDefault("render.center_x", "-0.5")
	v.SetDefault("render.center_y", "0")
	v.SetDefault("render.scale", "0.005")
	v.SetDefault("render.julia", false)
	v.SetDefault("render.c_re", "-0.4")
	v.SetDefault("render.c_im", "0.6")
	v.SetDefault("render.workers", 0)      // 0 means GOMAXPROCS
	v.SetDefault("render.palette_size", 0) // 0 means the default palette
	v.SetDefault("render.seed", 1)
	v.SetDefault("render.output", "fractal.png")
}
