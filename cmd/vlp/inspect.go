// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/vlp-tools/vlp/internal/inspect"
	"github.com/vlp-tools/vlp/internal/issue"

	"github.com/spf13/cobra"
)

func newInspectCommand(app *App) *cobra.Command {
	var (
		recursive bool
		long      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "List the entries of an archive",
		Long: `List the entries of an archive, one per line.

With --recursive, members that are archives themselves are listed too, their
entries joined to the member path with "!/" (lockscreen.itz!/preview/a.jpg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := inspect.List(args[0], inspect.Options{Recursive: recursive})
			if err != nil {
				return issue.WrapWithContext(err, "inspect archive", args[0])
			}

			for _, e := range entries {
				if !long {
					fmt.Fprintln(app.stdout, e.Path)
					continue
				}
				kind := "-"
				switch {
				case e.Dir:
					kind = "d"
				case e.Archive:
					kind = "z"
				}
				fmt.Fprintf(app.stdout, "%s %10d %s %s%s\n",
					kind, e.Size, e.Modified.Format("2006-01-02 15:04"),
					strings.Repeat("  ", e.Depth), e.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into nested archives")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show kind, size and modification time")

	return cmd
}
