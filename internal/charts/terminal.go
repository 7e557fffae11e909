package charts

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is the fallback terminal width when detection fails.
const DefaultTerminalWidth = 80

// TerminalWidth returns the width of stdout, or DefaultTerminalWidth when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
