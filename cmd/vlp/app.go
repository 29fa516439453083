// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/internal/config"
	"github.com/vlp-tools/vlp/internal/shellreg"
	"github.com/vlp-tools/vlp/internal/tui"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reads its settings after the root pre-run loaded
	// the configuration.
	App struct {
		Config     config.Provider
		Backend    archive.Backend
		Register   func(exe string) error
		Unregister func() error
		Executable func() (string, error)

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags    globalFlags
		settings settings
		logger   *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		// Backend replaces the resolved zip executable when set.
		Backend    archive.Backend
		Register   func(exe string) error
		Unregister func() error
		Executable func() (string, error)
		Stdin      io.Reader
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// globalFlags holds the persistent root flags.
	globalFlags struct {
		verbose   bool
		cfgFile   string
		pause     bool
		noSpinner bool
	}

	// settings is the merge of flags over configuration.
	settings struct {
		verbose   bool
		pause     bool
		spinner   tui.SpinnerType
		noSpinner bool
		zipPath   string
		outputDir string
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:     deps.Config,
		Backend:    deps.Backend,
		Register:   deps.Register,
		Unregister: deps.Unregister,
		Executable: deps.Executable,
		stdin:      deps.Stdin,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Register == nil {
		app.Register = shellreg.Register
	}
	if app.Unregister == nil {
		app.Unregister = shellreg.Unregister
	}
	if app.Executable == nil {
		app.Executable = currentExecutable
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	app.settings = settings{spinner: tui.SpinnerVLP}
	app.logger = newLogger(app.stderr, false)
	return app
}

// loadSettings loads configuration and lets explicitly set flags win.
// A configuration that fails to load is reported and defaults are used.
func (a *App) loadSettings(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.configOptions())
	if err != nil {
		a.warn(err)
		cfg = config.DefaultConfig()
	}

	s := settings{
		verbose:   a.flags.verbose || cfg.UI.Verbose,
		pause:     a.flags.pause || cfg.UI.PauseOnError,
		noSpinner: a.flags.noSpinner,
		zipPath:   cfg.ZipPath,
		outputDir: cfg.OutputDir,
		spinner:   tui.SpinnerVLP,
	}
	if t, err := tui.ParseSpinnerType(cfg.UI.Spinner); err == nil {
		s.spinner = t
	}

	a.settings = s
	a.logger = newLogger(a.stderr, s.verbose)
}

// configOptions returns the load options derived from the --config flag.
func (a *App) configOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.flags.cfgFile}
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved, nil
	}
	return exe, nil
}
