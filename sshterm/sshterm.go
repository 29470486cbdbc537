// Package sshterm adapts an SSH session channel to the line editor's
// TTY capability.
package sshterm

import (
	"io"
	"sync/atomic"

	gliderssh "github.com/gliderlabs/ssh"
)

// Terminal drives the editor over an SSH channel. The client's ssh
// process owns the local terminal discipline once a pty is granted, so
// raw-mode control is a no-op on this side; the width follows pty
// window-change requests.
type Terminal struct {
	rw    io.ReadWriter
	width atomic.Int64
}

// New wraps an SSH session channel. width is the initial pty width;
// winCh, when non-nil, delivers window-change updates and may be the
// channel returned by Session.Pty.
func New(rw io.ReadWriter, width int, winCh <-chan gliderssh.Window) *Terminal {
	t := &Terminal{rw: rw}
	if width <= 0 {
		width = 80
	}
	t.width.Store(int64(width))
	if winCh != nil {
		go t.watch(winCh)
	}
	return t
}

func (t *Terminal) watch(winCh <-chan gliderssh.Window) {
	for win := range winCh {
		if win.Width > 0 {
			t.width.Store(int64(win.Width))
		}
	}
}

func (t *Terminal) Read(p []byte) (int, error)  { return t.rw.Read(p) }
func (t *Terminal) Write(p []byte) (int, error) { return t.rw.Write(p) }

// MakeRaw is a no-op; the pty request already put the client terminal
// in the right discipline.
func (t *Terminal) MakeRaw() error { return nil }

// Restore is a no-op for the same reason as MakeRaw.
func (t *Terminal) Restore() error { return nil }

// Width reports the most recent pty width.
func (t *Terminal) Width() int {
	return int(t.width.Load())
}
