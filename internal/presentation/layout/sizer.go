// Package layout checks rendered output against the terminal it goes to.
package layout

import (
	"io"
	"os"

	"github.com/penwyp/go-gh-heat/internal/util"
	"golang.org/x/term"
)

// Sizer reports the width of an output stream when it is a terminal.
type Sizer struct {
	getSize func(fd int) (width, height int, err error)
}

func NewSizer() *Sizer {
	return &Sizer{getSize: term.GetSize}
}

// TerminalWidth returns the column count of w, or false when w is not a terminal.
func (s *Sizer) TerminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return s.width(int(f.Fd()))
}

func (s *Sizer) width(fd int) (int, bool) {
	width, _, err := s.getSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	util.LogDebugf("Terminal width %d", width)
	return width, true
}

// Overflow returns how many columns a line of lineWidth would be clipped by
// on a terminal of termWidth. Zero means it fits.
func Overflow(lineWidth, termWidth int) int {
	if termWidth <= 0 || lineWidth <= termWidth {
		return 0
	}
	return lineWidth - termWidth
}
