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
	_ "embed"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

// Category is one of the four fixed shortcut groupings
type Category int

const (
	CategoryMovement Category = iota
	CategoryEdit
	CategoryRecall
	CategoryProcess
)

// categoryOrder is the canonical display sequence, regardless of flag order
var categoryOrder = []Category{
	CategoryMovement,
	CategoryEdit,
	CategoryRecall,
	CategoryProcess,
}

func (c Category) String() string {
	switch c {
	case CategoryMovement:
		return "movement"
	case CategoryEdit:
		return "edit"
	case CategoryRecall:
		return "recall"
	case CategoryProcess:
		return "process"
	default:
		return "unknown"
	}
}

// Title is the header form of the category name
func (c Category) Title() string {
	return strings.ToUpper(c.String())
}

////////////////////////////////////////////////////////////////////////////////////////////////////

type Shortcut struct {
	Keys        string `toml:"keys"`
	Description string `toml:"description"`
}

type shortcutTable struct {
	Movement []Shortcut `toml:"movement"`
	Edit     []Shortcut `toml:"edit"`
	Recall   []Shortcut `toml:"recall"`
	Process  []Shortcut `toml:"process"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////

//go:embed shortcuts.toml
var rawShortcuts []byte

var shortcuts shortcutTable

func init() {
	if err := toml.Unmarshal(rawShortcuts, &shortcuts); err != nil {
		log.Fatalf("failed to decode embedded shortcut table: %v", err)
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// entriesFor returns the curated shortcut list for a category
func entriesFor(cat Category) []Shortcut {
	switch cat {
	case CategoryMovement:
		return shortcuts.Movement
	case CategoryEdit:
		return shortcuts.Edit
	case CategoryRecall:
		return shortcuts.Recall
	case CategoryProcess:
		return shortcuts.Process
	default:
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////
