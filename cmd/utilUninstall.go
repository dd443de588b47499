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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DanielRivasMD/horus"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// swapped out in tests
var (
	executablePath = os.Executable
	removeBinary   = os.Remove
)

////////////////////////////////////////////////////////////////////////////////////////////////////

func runUninstall(cmd *cobra.Command) {
	horus.CheckErr(
		uninstallBinary(cmd.OutOrStdout()),
		horus.WithOp("bk.uninstall"),
		horus.WithCategory("uninstall_failure"),
		horus.WithMessage("removing installed binary"),
		horus.WithFormatter(func(he *horus.Herror) string {
			return "failed to uninstall: " + chalk.Red.Color(he.Err.Error())
		}),
	)
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// uninstallBinary removes the running binary from disk
func uninstallBinary(w io.Writer) error {
	path, err := executablePath()
	if err != nil {
		return fmt.Errorf("resolving installed binary path: %w", err)
	}

	// follow the symlink so the install target is removed, not the link
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if err := removeBinary(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	fmt.Fprintf(w, "Uninstalled %s\n", path)
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////
