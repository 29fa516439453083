// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/vlp-tools/vlp/internal/issue"
	"github.com/vlp-tools/vlp/internal/shellreg"

	"github.com/spf13/cobra"
)

func newRegisterCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Add the Explorer folder right-click entry (Windows)",
		Long: `Add "` + shellreg.MenuLabel + `" to the Explorer context menu of folders.

The entry runs this executable with --pause on the clicked folder. Writing
HKEY_CLASSES_ROOT usually requires an elevated prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exe, err := app.Executable()
			if err != nil {
				return issue.WrapWithContext(err, "locate vlp executable", "")
			}
			if err := app.Register(exe); err != nil {
				return registrationError("register shell entry", err)
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("✨ 右键功能注册成功!"))
			return nil
		},
	}
}

func newUnregisterCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister",
		Short: "Remove the Explorer folder right-click entry (Windows)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Unregister(); err != nil {
				return registrationError("unregister shell entry", err)
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("✨ 右键功能取消注册成功!"))
			return nil
		},
	}
}

func registrationError(op string, err error) error {
	return issue.NewErrorContext().
		WithOperation(op).
		WithResource(`HKCR\` + shellreg.ParentKey + `\` + shellreg.KeyName).
		WithIssue(classifyIssue(err)).
		Wrap(err).
		BuildError()
}
