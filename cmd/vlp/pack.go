// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vlp-tools/vlp/internal/archive"
	"github.com/vlp-tools/vlp/internal/issue"
	"github.com/vlp-tools/vlp/internal/lockscreen"
	"github.com/vlp-tools/vlp/internal/pipeline"
	"github.com/vlp-tools/vlp/internal/tui"
	"github.com/vlp-tools/vlp/internal/zipcmd"
	"github.com/vlp-tools/vlp/pkg/types"

	"github.com/spf13/cobra"
)

// packOptions holds the flags shared by the root command and `vlp pack`.
type packOptions struct {
	output  string
	zipPath string
}

func addPackFlags(cmd *cobra.Command, opts *packOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default is the parent of the input)")
	cmd.Flags().StringVarP(&opts.zipPath, "zip", "z", "", "path to the zip executable")
}

func newPackCommand(app *App) *cobra.Command {
	var opts packOptions

	cmd := &cobra.Command{
		Use:   "pack <input>",
		Short: "Package a lockscreen theme directory",
		Long: `Package a lockscreen theme directory.

The artifact is written to <output>/lockscreen. It contains lockscreen.itz,
which holds preview/, description.xml stamped with a fresh version number,
and lockscreen/<version>.zip built from the lockscreen/ directory.

An existing <output>/lockscreen.zip is replaced while the artifact is
written; a warning is logged when that happens.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd.Context(), app, args[0], opts)
		},
	}
	addPackFlags(cmd, &opts)

	return cmd
}

// runPack validates input, resolves zip and runs the pipeline under the spinner.
func runPack(ctx context.Context, app *App, input string, opts packOptions) error {
	s := app.settings

	absInput, err := filepath.Abs(input)
	if err != nil {
		return issue.WrapWithContext(err, "resolve input", input)
	}

	if err := lockscreen.ValidateInput(absInput); err != nil {
		return issue.NewErrorContext().
			WithOperation("validate input").
			WithResource(absInput).
			WithSuggestion("Pass the theme root, the directory holding description.xml").
			WithIssue(classifyIssue(err)).
			Wrap(err).
			BuildError()
	}

	output := opts.output
	if output == "" {
		output = s.outputDir
	}
	outputDir, err := lockscreen.ResolveOutputDir(absInput, output)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("prepare output directory").
			WithResource(output).
			WithSuggestion("Choose a writable directory with -o").
			WithIssue(classifyIssue(err)).
			Wrap(err).
			BuildError()
	}

	backend, err := app.backend(opts.zipPath)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("正在打包:%s...", absInput)
	var res *pipeline.Result
	err = tui.Spin(ctx, tui.SpinOptions{
		Title:    title,
		Type:     s.spinner,
		Disabled: s.noSpinner || s.verbose || !tui.IsTerminal(app.stderr),
		Output:   app.stderr,
	}, func(ctx context.Context, status tui.StatusFunc) error {
		var runErr error
		res, runErr = pipeline.Run(ctx, pipeline.Options{
			Input:     absInput,
			OutputDir: outputDir,
			Backend:   backend,
			Logger:    app.logger,
			Progress: func(step pipeline.Step) {
				app.logger.Debug("pipeline step", "step", step.String())
				status(title + " " + step.String())
			},
		})
		return runErr
	})
	if err != nil {
		packErr := issue.NewErrorContext().
			WithOperation("pack lockscreen").
			WithResource(absInput).
			WithIssue(classifyIssue(err)).
			Wrap(err).
			BuildError()
		if errors.Is(err, tui.ErrInterrupted) || errors.Is(err, context.Canceled) {
			return &ExitError{Code: types.ExitInterrupted, Err: packErr}
		}
		return packErr
	}

	fmt.Fprintln(app.stdout, SuccessStyle.Render("✨ 输出路径: ")+PathStyle.Render(res.Output))
	return nil
}

// backend returns the injected backend or resolves the zip executable,
// preferring the flag over configuration.
func (a *App) backend(flagPath string) (archive.Backend, error) {
	if a.Backend != nil {
		return a.Backend, nil
	}

	explicit := flagPath
	if explicit == "" {
		explicit = a.settings.zipPath
	}
	zip, err := zipcmd.Resolve(explicit, zipcmd.WithLogger(a.logger))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate zip").
			WithSuggestion("Install Info-ZIP zip or pass its path with -z").
			WithIssue(issue.ZipNotFoundId).
			Wrap(err).
			BuildError()
	}
	a.logger.Debug("zip resolved", "path", zip.Path())
	return zip, nil
}
