// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/vlp-tools/vlp/internal/config"
	"github.com/vlp-tools/vlp/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `vlp config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vlp configuration",
		Long: `Manage vlp configuration.

Configuration is stored in:
  - Linux: ~/.config/vlp/config.cue
  - macOS: ~/Library/Application Support/vlp/config.cue
  - Windows: %APPDATA%\vlp\config.cue

Every key can be overridden with a VLP_ environment variable, dots replaced
by underscores (VLP_ZIP_PATH, VLP_UI_SPINNER).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.Config.Load(cmd.Context(), app.configOptions())
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("show configuration").
					WithIssue(issue.ConfigLoadFailedId).
					Wrap(err).
					BuildError()
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig(app.configOptions())
			if err != nil {
				return issue.WrapWithContext(err, "create configuration", path)
			}
			if !created {
				fmt.Fprintln(app.stdout, WarningStyle.Render("Config file already exists: ")+PathStyle.Render(path))
				return nil
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Created config file: ")+PathStyle.Render(path))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath(app.configOptions())
			if err != nil {
				return issue.WrapWithContext(err, "resolve configuration path", "")
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}
