//go:build windows
// +build windows

package screen

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal switches the console behind f into VT mode and
// returns a function restoring the previous mode. Redirected output is
// left untouched.
func enableVirtualTerminal(f *os.File) (func() error, error) {
	handle := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// Not a console (pipe or file): nothing to enable.
		return nil, nil
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil, nil
	}

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, err
	}
	return func() error {
		return windows.SetConsoleMode(handle, mode)
	}, nil
}
