package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultWidth is used when the writer is not a terminal.
const defaultWidth = 80

// TerminalWidth returns the column width of the writer's terminal, or a
// default when the writer is not a terminal or its size cannot be read.
func TerminalWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
