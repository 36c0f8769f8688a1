package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/grapher"
	"honnef.co/go/grapher/chart"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, grapher.DefaultChartParams(), cfg.Chart.Params())
	assert.Equal(t, "x**2", cfg.Formula.Expr)
	assert.Equal(t, 50, cfg.Formula.Points)
	assert.Equal(t, 0, cfg.Curves)
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, `
curves: 3
chart:
  x_label: Time
  x_max: 60
  grid_step_x: 5
  grid: false
export:
  backend: canvas
  dpi: 600
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Curves = 3
	want.Chart.XLabel = "Time"
	want.Chart.XMax = 60
	want.Chart.GridStepX = 5
	want.Chart.Grid = false
	want.Export.Backend = "canvas"
	want.Export.DPI = 600
	assert.Equal(t, want, cfg)

	opts, err := cfg.ExportOptions(chart.SVG)
	require.NoError(t, err)
	assert.Equal(t, chart.Canvas, opts.Backend)
	assert.Equal(t, chart.SVG, opts.Format)
	assert.Equal(t, grapher.Sz(12, 8), opts.Size)
	assert.Equal(t, 600, opts.DPI)

	opts, err = cfg.PrintOptions()
	require.NoError(t, err)
	assert.Equal(t, chart.PNG, opts.Format)
	assert.Equal(t, grapher.Sz(11, 8.5), opts.Size)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"negative max", "chart:\n  y_max: -1\n", grapher.ErrValidation},
		{"negative curves", "curves: -2\n", grapher.ErrValidation},
		{"formula points", "formula:\n  points: 1\n", grapher.ErrValidation},
		{"backend", "export:\n  backend: cairo\n", chart.ErrUnknownBackend},
		{"dpi", "export:\n  dpi: 0\n", grapher.ErrValidation},
		{"low dpi", "export:\n  dpi: 299\n", grapher.ErrValidation},
		{"print size", "export:\n  print_width: 0\n", grapher.ErrValidation},
		{"window", "window:\n  height: 0\n", grapher.ErrValidation},
		{"syntax", "chart: [1, 2\n", nil},
		{"type", "curves: many\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on Unix")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/grapher/config.yaml", path)
}
