// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vlp-tools/vlp/internal/issue"
	"github.com/vlp-tools/vlp/internal/lockscreen"
	"github.com/vlp-tools/vlp/internal/shellreg"
	"github.com/vlp-tools/vlp/internal/tui"
	"github.com/vlp-tools/vlp/internal/zipcmd"

	"github.com/charmbracelet/fang"
)

const errorPrefix = "❌ 程序运行出错, "

// classifyIssue picks the catalog guide matching err, or 0.
func classifyIssue(err error) issue.Id {
	var toolErr *zipcmd.ToolError
	switch {
	case errors.Is(err, zipcmd.ErrNotFound):
		return issue.ZipNotFoundId
	case errors.Is(err, lockscreen.ErrMissingEntry):
		return issue.IncompleteInputId
	case errors.Is(err, lockscreen.ErrTagNotFound):
		return issue.DescriptionTagsMissingId
	case errors.As(err, &toolErr):
		return issue.ArchiveToolFailedId
	case errors.Is(err, shellreg.ErrUnsupported):
		return issue.RegistrationUnsupportedId
	case errors.Is(err, os.ErrPermission):
		return issue.PermissionDeniedId
	default:
		return 0
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// warn prints a non-fatal error.
func (a *App) warn(err error) {
	fmt.Fprintln(a.stderr, WarningStyle.Render("warning: ")+formatErrorForDisplay(err, a.flags.verbose))
}

// handleError is the fang error handler. It prints the error and, when the
// error references a catalog issue, the rendered guide.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render(errorPrefix)+formatErrorForDisplay(err, a.settings.verbose))

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue == 0 {
		return
	}
	guide := issue.Get(ae.Issue)
	if guide == nil {
		return
	}

	style := "notty"
	if tui.IsTerminal(w) {
		style = "auto"
	}
	rendered, renderErr := guide.Render(style)
	if renderErr != nil {
		a.logger.Debug("render issue guide", "err", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
