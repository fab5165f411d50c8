// Package terminal queries and controls the attached terminal.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// Clear clears the screen and homes the cursor. Nothing is written when w is
// not a terminal so piped output stays readable.
func Clear(w io.Writer) {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return
	}
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}
