//go:build !unix

package viewport

import "os"

// Resize notifications are not delivered on this platform.
func terminalSize(int) (width, height int, err error) {
	return 0, 0, ErrNotTerminal
}

func notifyResize(chan<- os.Signal) (stop func()) {
	return func() {}
}
