// Package config loads the application's settings from YAML and coerces
// form input.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"honnef.co/go/grapher"
	"honnef.co/go/grapher/chart"
)

// Config is the contents of the configuration file. Keys missing from the
// file keep their defaults.
type Config struct {
	Chart Chart `yaml:"chart"`
	// Curves is the number of curves created at start-up; zero creates
	// none.
	Curves  int     `yaml:"curves"`
	Formula Formula `yaml:"formula"`
	Export  Export  `yaml:"export"`
	Window  Window  `yaml:"window"`
}

// Chart holds the initial chart parameters.
type Chart struct {
	XLabel    string  `yaml:"x_label"`
	YLabel    string  `yaml:"y_label"`
	XMax      float64 `yaml:"x_max"`
	YMax      float64 `yaml:"y_max"`
	GridStepX float64 `yaml:"grid_step_x"`
	GridStepY float64 `yaml:"grid_step_y"`
	Grid      bool    `yaml:"grid"`
}

type Formula struct {
	Expr   string `yaml:"expr"`
	Points int    `yaml:"points"`
}

type Export struct {
	// Backend is "gonum" or "canvas".
	Backend string `yaml:"backend"`
	DPI     int    `yaml:"dpi"`
	// Sizes are in inches.
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PrintWidth  float64 `yaml:"print_width"`
	PrintHeight float64 `yaml:"print_height"`
	Title       string  `yaml:"title"`
}

// Window size in dp.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() Config {
	p := grapher.DefaultChartParams()
	return Config{
		Chart: Chart{
			XLabel:    p.XLabel,
			YLabel:    p.YLabel,
			XMax:      p.XMax,
			YMax:      p.YMax,
			GridStepX: p.GridStepX,
			GridStepY: p.GridStepY,
			Grid:      p.GridEnabled,
		},
		Formula: Formula{Expr: "x**2", Points: 50},
		Export: Export{
			Backend:     "gonum",
			DPI:         300,
			Width:       12,
			Height:      8,
			PrintWidth:  11,
			PrintHeight: 8.5,
			Title:       "Chart",
		},
		Window: Window{Width: 1400, Height: 800},
	}
}

// DefaultPath returns grapher/config.yaml in the user's configuration
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "grapher", "config.yaml"), nil
}

// MinDPI is the lowest resolution accepted for exported and printed PNGs.
const MinDPI = 300

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Chart.Params().Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if c.Curves < 0 {
		return fmt.Errorf("%w: curves must not be negative, got %d", grapher.ErrValidation, c.Curves)
	}
	if c.Formula.Points < 2 {
		return fmt.Errorf("%w: formula points must be at least 2, got %d", grapher.ErrValidation, c.Formula.Points)
	}
	if _, err := chart.ParseBackend(c.Export.Backend); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if c.Export.DPI < MinDPI {
		return fmt.Errorf("%w: export dpi must be at least %d, got %d", grapher.ErrValidation, MinDPI, c.Export.DPI)
	}
	for _, sz := range []grapher.Size{c.exportSize(), c.printSize()} {
		if sz.IsEmpty() || sz.IsInf() {
			return fmt.Errorf("%w: page size %s", grapher.ErrValidation, sz)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %d×%d", grapher.ErrValidation, c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c Chart) Params() grapher.ChartParams {
	return grapher.ChartParams{
		XLabel:      c.XLabel,
		YLabel:      c.YLabel,
		XMax:        c.XMax,
		YMax:        c.YMax,
		GridStepX:   c.GridStepX,
		GridStepY:   c.GridStepY,
		GridEnabled: c.Grid,
	}
}

func (c Config) exportSize() grapher.Size { return grapher.Sz(c.Export.Width, c.Export.Height) }
func (c Config) printSize() grapher.Size  { return grapher.Sz(c.Export.PrintWidth, c.Export.PrintHeight) }

// ExportOptions returns the options for exporting in format f.
func (c Config) ExportOptions(f chart.Format) (chart.Options, error) {
	b, err := chart.ParseBackend(c.Export.Backend)
	if err != nil {
		return chart.Options{}, err
	}
	o := chart.ExportOptions(f)
	o.Backend = b
	o.Size = c.exportSize()
	o.DPI = c.Export.DPI
	return o, nil
}

// PrintOptions returns the options for printed pages.
func (c Config) PrintOptions() (chart.Options, error) {
	o, err := c.ExportOptions(chart.PNG)
	if err != nil {
		return chart.Options{}, err
	}
	o.Size = c.printSize()
	return o, nil
}
