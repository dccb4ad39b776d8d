// Package config loads run settings for the centipede tools from an
// optional config file and CENTIPEDE_* environment variables.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/timpalpant/centipede/render"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Rounds is the number of cycles to play. Zero means ask the user.
	Rounds int `mapstructure:"rounds"`
	// DotOutput is where to write the Graphviz rendering. Empty disables it.
	DotOutput string `mapstructure:"dot_output"`
	// Format is an image format to render DotOutput into with Graphviz.
	Format         string `mapstructure:"format"`
	HighlightColor string `mapstructure:"highlight_color"`
	Direction      string `mapstructure:"direction"`
	// DebugAddr serves expvar and pprof when set, e.g. localhost:4123.
	DebugAddr string `mapstructure:"debug_addr"`
}

func setDefaults(v *viper.Viper) {
	defaults := render.DefaultOptions()
	v.SetDefault("rounds", 0)
	v.SetDefault("dot_output", "")
	v.SetDefault("format", "")
	v.SetDefault("highlight_color", defaults.HighlightColor)
	v.SetDefault("direction", defaults.Direction)
	v.SetDefault("debug_addr", "")
}

// Load reads the config file at path (yaml, json or toml, chosen by
// extension), if path is non-empty, and applies environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("centipede")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %v", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Rounds < 0 {
		return errors.Wrapf(ErrInvalidConfig, "rounds must not be negative, got %d", c.Rounds)
	}

	if c.Format != "" {
		if !render.IsSupportedFormat(c.Format) {
			return errors.Wrapf(ErrInvalidConfig, "unsupported format %q", c.Format)
		}
		if c.DotOutput == "" {
			return errors.Wrap(ErrInvalidConfig, "format requires dot_output")
		}
	}

	switch c.Direction {
	case "TB", "LR", "BT", "RL":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown direction %q", c.Direction)
	}

	return nil
}

// RenderOptions returns the DOT options selected by this config.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.HighlightColor = c.HighlightColor
	opts.Direction = c.Direction
	return opts
}
