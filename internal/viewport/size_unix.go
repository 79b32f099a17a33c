//go:build unix

package viewport

import (
	"errors"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		if errors.Is(err, unix.ENOTTY) {
			return 0, 0, ErrNotTerminal
		}
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

func notifyResize(ch chan<- os.Signal) (stop func()) {
	signal.Notify(ch, unix.SIGWINCH)
	return func() { signal.Stop(ch) }
}
