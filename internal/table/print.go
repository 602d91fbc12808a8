package table

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/tabulatehq/tabulate/internal/util"
)

// printOrPage either prints text to stdout or invokes the 'less'
// utility to display it. 'less' is invoked if stdout is connected to
// a tty, the provided width is too wide for the tty, and 'less' is
// actually installed.
func printOrPage(text string, width int) {
	termWidth, _, err := term.GetSize(1)
	if err != nil || width < termWidth {
		fmt.Print(text)
		return
	}

	if _, err := exec.LookPath("less"); err != nil {
		fmt.Print(text)
		return
	}

	// Normally, LANG or equivalent environment variables will be
	// set, so less will use the right charset out of the box.
	// Unfortunately this doesn't happen in Docker, so we have to
	// configure less manually (otherwise it will display some
	// non-ASCII characters as escape sequences). See the man page
	// for less.
	err = util.RunCmdWithInput(
		[]string{"less", "-S"}, text, "LESSCHARSET=utf-8")
	if err != nil {
		util.Die("running pager: %s", err)
	}
}

// Print writes the rendered table to stdout. If the table is too wide
// for the current terminal, and the 'less' utility is installed,
// Print invokes it with the -S option to truncate long lines and
// allow horizontal scrolling.
func (t *Table) Print() {
	text := t.Render()
	if text == "" {
		return
	}
	width := 0
	for _, line := range strings.Split(text, "\n") {
		if w := DisplayWidth(line); w > width {
			width = w
		}
	}
	printOrPage(text+"\n", width)
}
