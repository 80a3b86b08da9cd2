package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1000
	WindowHeight = 800
	WindowTitle  = "Particle Editor"

	// Config panel
	PanelX     = 5
	PanelY     = 5
	PanelWidth = 350

	// Curve editor
	CurveWidth     = 200
	CurveHeight    = 50
	CurveMin       = 0.0
	CurveMax       = 2.0
	CurveThreshold = 0.1

	// Color picker gradient surface
	GradientSize = 200

	// Lifetime preview
	PreviewSamples = 24

	EnvPrefix = "PARTICLE_EDITOR"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	Curve   CurveConfig
	Preview PreviewConfig
	Log     LogConfig
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// CurveConfig holds the size curve editor settings.
type CurveConfig struct {
	Width     float64
	Height    float64
	Min       float64
	Max       float64
	Threshold float64
}

// PreviewConfig holds lifetime preview settings.
type PreviewConfig struct {
	Samples int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("curve.width", CurveWidth)
	v.SetDefault("curve.height", CurveHeight)
	v.SetDefault("curve.min", CurveMin)
	v.SetDefault("curve.max", CurveMax)
	v.SetDefault("curve.threshold", CurveThreshold)
	v.SetDefault("preview.samples", PreviewSamples)
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix
// PARTICLE_EDITOR_. The file is $PARTICLE_EDITOR_CONFIG if set, else
// config.toml under ~/.config/particle-editor; a missing file is not an error.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "particle-editor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the editor cannot lay out.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Curve.Width <= 0 || c.Curve.Height <= 0:
		return fmt.Errorf("config: curve size %gx%g must be positive", c.Curve.Width, c.Curve.Height)
	case c.Curve.Max <= c.Curve.Min:
		return fmt.Errorf("config: curve range [%g, %g] is empty", c.Curve.Min, c.Curve.Max)
	case c.Curve.Threshold <= 0 || c.Curve.Threshold > 1:
		return fmt.Errorf("config: curve threshold %g outside (0, 1]", c.Curve.Threshold)
	case c.Preview.Samples < 2:
		return fmt.Errorf("config: preview samples %d must be at least 2", c.Preview.Samples)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}
