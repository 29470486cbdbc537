package interactx

import (
	"errors"
	"fmt"
	"io"

	"pkt.systems/pslog"

	"pkt.systems/interactx/history"
	"pkt.systems/interactx/term"
)

// TTY is the terminal capability a Session drives. Read delivers raw
// input bytes, Write emits ANSI repaint sequences, MakeRaw and Restore
// bracket one editing transaction, and Width reports the current
// column count for wrap accounting.
type TTY interface {
	io.Reader
	io.Writer
	MakeRaw() error
	Restore() error
	Width() int
}

// Config assembles a Session. The zero value is usable: empty prompt,
// single-line mode, unbounded in-memory history on the process
// terminal.
type Config struct {
	// Prompt is written before the editable region of every line.
	Prompt string
	// MultiLine selects the column-wrapped renderer. The mode is fixed
	// for the lifetime of the Session.
	MultiLine bool
	// HistoryLimit bounds the number of retained lines; 0 keeps all.
	HistoryLimit int
	// HistoryFile, when set, is loaded before the first ReadLine. A
	// missing file is not an error.
	HistoryFile string
	// Completer, when set, handles Tab presses.
	Completer Completer
	// TTY overrides the terminal; defaults to the process terminal.
	TTY TTY
	// Logger receives engine diagnostics. Nil disables logging.
	Logger pslog.Logger
}

// New validates cfg and builds a Session. All options are applied
// atomically; an error leaves no terminal state behind.
func New(cfg Config) (*Session, error) {
	if cfg.HistoryLimit < 0 {
		return nil, errors.New("history limit must not be negative")
	}
	tty := cfg.TTY
	if tty == nil {
		t, err := term.Open()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		tty = t
	}
	hist := history.New(cfg.HistoryLimit)
	if cfg.HistoryFile != "" {
		if err := hist.Load(cfg.HistoryFile); err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
	}
	return &Session{
		tty:       tty,
		prompt:    []byte(cfg.Prompt),
		multi:     cfg.MultiLine,
		completer: cfg.Completer,
		history:   hist,
		log:       cfg.Logger,
	}, nil
}
