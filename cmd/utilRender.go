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
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// renderCategories emits each category table in the order given
func renderCategories(w io.Writer, cats []Category) error {
	for _, cat := range cats {
		if err := emitCategory(w, cat); err != nil {
			return err
		}
	}
	return nil
}

// emitCategory prints one titled table of key-combo / description rows
func emitCategory(w io.Writer, cat Category) error {
	if _, err := fmt.Fprintf(w, "=== %s Shortcuts ===\n", cat.Title()); err != nil {
		return err
	}
	for _, s := range entriesFor(cat) {
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", s.Keys, s.Description); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// isBrokenPipe reports whether a write failed because the downstream
// consumer (less, head, grep) closed its end; exit quietly in that case
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}

////////////////////////////////////////////////////////////////////////////////////////////////////
