//go:build !windows
// +build !windows

package screen

import "os"

// enableVirtualTerminal is a no-op outside Windows; ANSI is always on.
func enableVirtualTerminal(f *os.File) (func() error, error) {
	return nil, nil
}
