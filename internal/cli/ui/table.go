package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/rodaine/table"
)

// NewTable creates a table with consistent styling
func NewTable(headers ...interface{}) table.Table {
	tbl := table.New(headers...)

	// Bold the first column only; header formatters cause layout issues
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return BoldStyle.Render(fmt.Sprintf(format, vals...))
	})

	tbl.WithPadding(2)

	// lipgloss.Width measures strings correctly in the presence of ANSI codes
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}

// TerminalWidth returns the current terminal width, or a default when output
// is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 120
}

// TruncatePath shortens a path for table display, keeping the tail. The cut
// happens on rune boundaries so multibyte path segments stay intact.
func TruncatePath(path string, max int) string {
	if max <= 1 {
		return path
	}
	runes := []rune(path)
	if len(runes) <= max {
		return path
	}
	return "…" + string(runes[len(runes)-max+1:])
}
