// Package screen wraps the terminal nimbus draws on: size queries, screen
// clearing and cursor visibility.
package screen

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"nimbus/errors"
)

// Terminal is the set of terminal operations the render loop needs.
type Terminal interface {
	io.Writer

	// Size returns the current column and row count.
	Size() (cols, rows int, err error)

	// Profile is the colour profile frames should be rendered for.
	Profile() termenv.Profile

	Clear()
	Home()
	ClearBelow()
	HideCursor()
	ShowCursor()
}

// Screen is a Terminal backed by a file, normally os.Stdout.
type Screen struct {
	f       *os.File
	out     *termenv.Output
	restore func() error
}

// New prepares f for drawing. On Windows this turns on virtual terminal
// processing so ANSI sequences are interpreted; Close undoes it.
func New(f *os.File) (*Screen, error) {
	restore, err := enableVirtualTerminal(f)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Cannot enable ANSI sequences on this console",
			"Run nimbus in Windows Terminal or a console with VT support")
	}
	return &Screen{
		f:       f,
		out:     termenv.NewOutput(f),
		restore: restore,
	}, nil
}

// Close restores the console mode changed by New.
func (s *Screen) Close() error {
	if s.restore == nil {
		return nil
	}
	return s.restore()
}

// IsTerminal reports whether the screen is attached to a terminal.
func (s *Screen) IsTerminal() bool {
	return term.IsTerminal(int(s.f.Fd()))
}

// Size implements Terminal.
func (s *Screen) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(s.f.Fd()))
	if err != nil {
		return 0, 0, errors.WrapWithCode(err, errors.ErrTerminal,
			"Cannot read terminal size",
			"nimbus must run attached to a terminal")
	}
	return cols, rows, nil
}

// Profile implements Terminal.
func (s *Screen) Profile() termenv.Profile {
	return s.out.Profile
}

func (s *Screen) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Screen) Clear()      { s.out.ClearScreen() }
func (s *Screen) Home()       { s.out.MoveCursor(1, 1) }
func (s *Screen) HideCursor() { s.out.HideCursor() }
func (s *Screen) ShowCursor() { s.out.ShowCursor() }

// ClearBelow erases from the cursor to the end of the screen.
func (s *Screen) ClearBelow() {
	fmt.Fprintf(s.out, termenv.CSI+termenv.EraseDisplaySeq, 0)
}
