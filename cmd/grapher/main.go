// Command grapher is an interactive editor for point curves.
//
// Curves are edited with the pointer on a fixed-range chart, smoothed with
// cubic splines or generated from formulas, and exported to PNG, SVG or PDF
// or printed.
package main

import (
	"flag"
	"fmt"
	"os"

	"gioui.org/app"
	"github.com/sgostarter/i/l"

	"honnef.co/go/grapher/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "configuration `file` (default $XDG_CONFIG_HOME/grapher/config.yaml)")
	curves := flag.Int("curves", -1, "number of curves to create at start-up, overriding the configuration")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Warn("no configuration directory, using defaults")
		}
		path = p
	}
	cfg := config.Default()
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("loading configuration")
			os.Exit(1)
		}
		cfg = c
	}
	if *curves >= 0 {
		cfg.Curves = *curves
	}

	go func() {
		w := new(app.Window)
		a, err := newApp(w, cfg, logger)
		if err == nil {
			err = a.run()
		}
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("grapher failed")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
