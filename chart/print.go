package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sgostarter/i/l"

	"honnef.co/go/grapher"
)

// Printer renders scenes to a temporary PNG file and hands it to the
// platform's print command. The file is removed once the command has
// returned, whether or not it succeeded.
type Printer struct {
	Options Options
	// Run runs a command to completion. Nil means running it with os/exec.
	Run func(ctx context.Context, name string, args ...string) error
	// GOOS selects the print command. Empty means runtime.GOOS.
	GOOS string
	// TempDir holds the rendered page. Empty means os.TempDir.
	TempDir string

	logger l.Wrapper
}

// NewPrinter returns a printer for 11×8.5 inch pages. A nil logger discards
// all log output.
func NewPrinter(logger l.Wrapper) *Printer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Printer{
		Options: PrintOptions(),
		logger:  logger.WithFields(l.StringField(l.ClsKey, "Printer")),
	}
}

// Print prints s. It blocks until the print command exits.
func (pr *Printer) Print(ctx context.Context, s grapher.Scene) error {
	f, err := os.CreateTemp(pr.TempDir, "grapher-*.png")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	name := f.Name()
	defer pr.remove(name)

	opts := pr.Options
	opts.Format = PNG
	if err := Export(f, s, opts); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}

	goos := pr.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	cmd, args := PrintCommand(goos, name)
	run := pr.Run
	if run == nil {
		run = runCommand
	}
	if err := run(ctx, cmd, args...); err != nil {
		pr.logger.WithFields(l.ErrorField(err), l.StringField("command", cmd)).Error("print command failed")
		return fmt.Errorf("%w: %s: %w", ErrPrint, cmd, err)
	}
	pr.logger.WithFields(l.StringField("command", cmd)).Info("chart sent to printer")
	return nil
}

func (pr *Printer) remove(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		pr.logger.WithFields(l.ErrorField(err), l.StringField("file", name)).Warn("removing print file")
	}
}

// PrintCommand returns the command that prints file on goos.
func PrintCommand(goos, file string) (string, []string) {
	switch goos {
	case "windows":
		quoted := "'" + strings.ReplaceAll(file, "'", "''") + "'"
		return "powershell", []string{
			"-NoProfile", "-NonInteractive", "-Command",
			"Start-Process -FilePath " + quoted + " -Verb Print -Wait",
		}
	case "darwin":
		return "lpr", []string{file}
	default:
		return "lp", []string{file}
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
