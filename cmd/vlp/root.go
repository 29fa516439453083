// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vlp.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vlp-tools/vlp/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the command tree. With an input directory and no
// subcommand, vlp packs it, which is what the Explorer entry invokes.
func newRootCommand(app *App) *cobra.Command {
	var packOpts packOptions

	rootCmd := &cobra.Command{
		Use:   "vlp [input]",
		Short: "Package vivo lockscreen themes",
		Long: TitleStyle.Render("vlp") + SubtitleStyle.Render(" - 用于打包锁屏主题的工具") + `

vlp turns a lockscreen theme directory into the nested archive the vivo
theme store accepts. Compression is done by the Info-ZIP zip executable.

` + SubtitleStyle.Render("Input layout:") + `
  <input>/description.xml
  <input>/preview/
  <input>/lockscreen/manifest.xml

` + SubtitleStyle.Render("Examples:") + `
  vlp ./my-theme              Pack into the parent directory of ./my-theme
  vlp pack ./my-theme -o out  Pack into ./out
  vlp inspect -r lockscreen   List the artifact, nested archives included
  vlp register                Add the Explorer right-click entry (Windows)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.loadSettings(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runPack(cmd.Context(), app, args[0], packOpts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	flags.StringVar(&app.flags.cfgFile, "config", "", "config file (default is <user config dir>/vlp/config.cue)")
	flags.BoolVar(&app.flags.pause, "pause", false, "wait for Enter before exiting after an error")
	flags.BoolVar(&app.flags.noSpinner, "no-spinner", false, "do not draw the progress spinner")
	addPackFlags(rootCmd, &packOpts)

	rootCmd.AddCommand(
		newPackCommand(app),
		newInspectCommand(app),
		newRegisterCommand(app),
		newUnregisterCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and returns the process exit code. It is called by
// main.main().
func Execute() int {
	return execute(context.Background(), NewApp(Dependencies{}), os.Args[1:])
}

func execute(ctx context.Context, app *App, args []string) int {
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	if err == nil {
		return int(types.ExitSuccess)
	}

	code := types.ExitFailure
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		code = exitErr.Code
	}

	if (app.settings.pause || app.flags.pause) && !code.IsInterrupted() {
		pause(app.stdin, app.stderr)
	}
	return int(code)
}
