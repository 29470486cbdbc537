// Package term controls the process terminal: raw-mode discipline and
// window size queries for the line editor.
package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Term drives the process terminal. It satisfies the editor's TTY
// capability: raw input bytes from stdin, repaint sequences to stdout,
// raw-mode control around each editing transaction.
type Term struct {
	in    *os.File
	out   *os.File
	saved *unix.Termios
}

// Open wraps the process stdin/stdout. It fails when stdin does not
// answer terminal attribute queries, i.e. is not a terminal.
func Open() (*Term, error) {
	if _, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), ioctlReadTermios); err != nil {
		return nil, fmt.Errorf("stdin is not a terminal: %w", err)
	}
	return &Term{in: os.Stdin, out: os.Stdout}, nil
}

func (t *Term) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t *Term) Write(p []byte) (int, error) { return t.out.Write(p) }

// MakeRaw captures the current terminal discipline and then disables
// canonical mode, echo, signal generation, and input/output
// post-processing, with reads returning as soon as one byte is
// available.
func (t *Term) MakeRaw() error {
	fd := int(t.in.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("query terminal attributes: %w", err)
	}
	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.INPCK | unix.ISTRIP | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("apply raw mode: %w", err)
	}
	t.saved = saved
	return flush(fd)
}

// Restore reapplies the discipline captured by MakeRaw and flushes
// pending I/O. It runs at most once per MakeRaw; further calls are
// no-ops.
func (t *Term) Restore() error {
	if t.saved == nil {
		return nil
	}
	saved := t.saved
	t.saved = nil
	fd := int(t.in.Fd())
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return flush(fd)
}

// Width reports the terminal column count, falling back to 80 when the
// query fails.
func (t *Term) Width() int {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
