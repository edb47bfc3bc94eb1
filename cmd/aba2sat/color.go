package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// yesNo renders a decision result, colorized when stdout is a terminal —
// grounded on go-tony/cmd/o/configs.go's isatty.IsTerminal gate before
// reaching for fatih/color.
func yesNo(ok bool) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		if ok {
			return "YES"
		}
		return "NO"
	}
	if ok {
		return color.GreenString("YES")
	}
	return color.RedString("NO")
}
