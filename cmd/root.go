/*
Copyright © 2026 arlandfran <arlandfran@pm.me>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// version is set at link time via `-ldflags -X github.com/arlandfran/bk/cmd.version=...`
var version = "dev"

////////////////////////////////////////////////////////////////////////////////////////////////////

type rootFlags struct {
	movement  bool
	edit      bool
	recall    bool
	process   bool
	uninstall bool
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "bk",
		Short:   "Reference Bash keyboard shortcuts from the command line",
		Long:    helpRoot,
		Example: exampleRoot,
		Version: version,
		Args:    cobra.NoArgs,

		Run: func(cmd *cobra.Command, args []string) {
			runRoot(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.movement, "movement", "m", false, "Show movement related shortcuts")
	cmd.Flags().BoolVarP(&flags.edit, "edit", "e", false, "Show edit related shortcuts")
	cmd.Flags().BoolVarP(&flags.recall, "recall", "r", false, "Show command recall (history) related shortcuts")
	cmd.Flags().BoolVarP(&flags.process, "process", "p", false, "Show process related shortcuts")
	cmd.Flags().BoolVar(&flags.uninstall, "uninstall", false, "Remove the installed bk binary")

	return cmd
}

var rootCmd = newRootCmd()

////////////////////////////////////////////////////////////////////////////////////////////////////

func Execute() {
	horus.CheckErr(rootCmd.Execute())
}

////////////////////////////////////////////////////////////////////////////////////////////////////

func runRoot(cmd *cobra.Command, flags *rootFlags) {
	if flags.uninstall {
		runUninstall(cmd)
		return
	}

	err := renderCategories(cmd.OutOrStdout(), selectedCategories(flags))
	if err != nil && !isBrokenPipe(err) {
		horus.CheckErr(
			err,
			horus.WithOp("bk.render"),
			horus.WithMessage("writing shortcut tables"),
		)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// selectedCategories filters the canonical order down to the requested set;
// an empty request means all categories
func selectedCategories(flags *rootFlags) []Category {
	requested := map[Category]bool{
		CategoryMovement: flags.movement,
		CategoryEdit:     flags.edit,
		CategoryRecall:   flags.recall,
		CategoryProcess:  flags.process,
	}

	var cats []Category
	for _, cat := range categoryOrder {
		if requested[cat] {
			cats = append(cats, cat)
		}
	}
	if len(cats) == 0 {
		return categoryOrder
	}
	return cats
}

////////////////////////////////////////////////////////////////////////////////////////////////////
