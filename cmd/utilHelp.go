////////////////////////////////////////////////////////////////////////////////////////////////////

package cmd

////////////////////////////////////////////////////////////////////////////////////////////////////

import (
	"github.com/DanielRivasMD/domovoi"
	"github.com/ttacon/chalk"
)

////////////////////////////////////////////////////////////////////////////////////////////////////

var helpRoot = domovoi.FormatHelp(
	"arlandfran",
	"arlandfran@pm.me",
	"Reference Bash keyboard shortcuts, grouped by category (movement, edit, recall, process). Flags chain Unix-style: -me shows movement and edit. No flags shows everything.",
)

var exampleRoot = chalk.Cyan.Color("bk") + `              Show all shortcuts
` + chalk.Cyan.Color("bk") + ` -m           Show movement shortcuts only
` + chalk.Cyan.Color("bk") + ` -me          Show movement and edit shortcuts (chained)
` + chalk.Cyan.Color("bk") + ` -e -r        Show edit and recall shortcuts (separate)
` + chalk.Cyan.Color("bk") + ` --version    Show version information`

////////////////////////////////////////////////////////////////////////////////////////////////////
