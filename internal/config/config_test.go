package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvPrefix+"_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, c.Window.Width)
	assert.Equal(t, WindowTitle, c.Window.Title)
	assert.Equal(t, CurveConfig{Width: 200, Height: 50, Min: 0, Max: 2, Threshold: 0.1}, c.Curve)
	assert.Equal(t, PreviewSamples, c.Preview.Samples)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "editor.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[curve]
max = 4.0
threshold = 0.05

[log]
level = "debug"
`), 0o644))
	t.Setenv(EnvPrefix+"_CONFIG", path)
	t.Setenv(EnvPrefix+"_WINDOW_WIDTH", "1280")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.Curve.Max)
	assert.Equal(t, 0.05, c.Curve.Threshold)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "editor.toml")
	require.NoError(t, os.WriteFile(path, []byte("[curve]\nmin = 3.0\nmax = 1.0\n"), 0o644))
	t.Setenv(EnvPrefix+"_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "curve range")
}

func TestValidate(t *testing.T) {
	ok := Config{
		Window:  WindowConfig{Width: 1, Height: 1},
		Curve:   CurveConfig{Width: 1, Height: 1, Min: 0, Max: 1, Threshold: 0.1},
		Preview: PreviewConfig{Samples: 2},
		Log:     LogConfig{Level: "warn"},
	}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Curve.Threshold = 0
	assert.Error(t, bad.Validate())

	bad = ok
	bad.Log.Level = "loud"
	assert.Error(t, bad.Validate())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
	_, err = ParseLevel("nope")
	assert.Error(t, err)
}
