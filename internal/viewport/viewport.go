// Package viewport provides sources of the space available to a layout
// root. Each implements layout.ViewportSignal.
package viewport

import (
	"errors"
	"os"
	"sync"

	"github.com/grindlemire/go-webobj/internal/layout"
)

// ErrNotTerminal is returned when a size is requested from a descriptor
// that is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal reports the size of a terminal and its resizes.
type Terminal struct {
	fd int
}

var _ layout.ViewportSignal = (*Terminal)(nil)

// NewTerminal creates a signal for the terminal behind f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: int(f.Fd())}
}

// Size returns the terminal size in columns and rows.
func (t *Terminal) Size() (width, height int, err error) {
	return terminalSize(t.fd)
}

// Subscribe calls fn with the new size after every terminal resize until
// cancel is called. Sizes that cannot be read are skipped.
func (t *Terminal) Subscribe(fn func(width, height int)) (cancel func()) {
	ch := make(chan os.Signal, 1)
	stop := notifyResize(ch)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
				if w, h, err := t.Size(); err == nil {
					fn(w, h)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			close(done)
		})
	}
}

// Manual is a signal driven by explicit Set calls, for hosts that learn
// their size from elsewhere such as a UI framework's resize messages.
type Manual struct {
	mu     sync.Mutex
	width  int
	height int
	next   int
	subs   map[int]func(width, height int)
}

var _ layout.ViewportSignal = (*Manual)(nil)

// NewManual creates a Manual signal with an initial size.
func NewManual(width, height int) *Manual {
	return &Manual{width: width, height: height, subs: make(map[int]func(int, int))}
}

// Size returns the last size set.
func (m *Manual) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Set records a new size and notifies subscribers when it changed.
func (m *Manual) Set(width, height int) {
	m.mu.Lock()
	if m.width == width && m.height == height {
		m.mu.Unlock()
		return
	}
	m.width, m.height = width, height
	subs := make([]func(int, int), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(width, height)
	}
}

// Subscribe implements layout.ViewportSignal.
func (m *Manual) Subscribe(fn func(width, height int)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
