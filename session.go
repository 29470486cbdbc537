// Package interactx is a line-editing engine for terminal programs: it
// reads one line of input from a raw-mode terminal while rendering live
// edits, history recall, and tab-completion cycling in place.
package interactx

import (
	"errors"

	"pkt.systems/pslog"

	"pkt.systems/interactx/history"
)

// ErrInterrupted reports that the user ended the line read with Ctrl-C
// or Ctrl-D on an empty buffer. The terminal mode is always restored
// before it is returned.
var ErrInterrupted = errors.New("line read interrupted")

// Session owns one edit buffer, history log, and terminal handle, and
// reads completed lines one transaction at a time. A Session is not
// safe for concurrent use; exactly one blocking read is outstanding at
// any moment.
type Session struct {
	tty       TTY
	prompt    []byte
	multi     bool
	completer Completer
	history   *history.History
	log       pslog.Logger
}

// SetPrompt replaces the prompt used by subsequent ReadLine calls.
func (s *Session) SetPrompt(prompt string) {
	s.prompt = []byte(prompt)
}

// SetCompleter installs or replaces the completion provider.
func (s *Session) SetCompleter(c Completer) {
	s.completer = c
}

// SetHistoryLimit replaces the history with a fresh one bounded by
// limit. Existing entries are discarded.
func (s *Session) SetHistoryLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	s.history = history.New(limit)
}

// History exposes the session's history log.
func (s *Session) History() *history.History {
	return s.history
}

// LoadHistory appends entries from the file at path. A missing file
// leaves the history unchanged and returns nil.
func (s *Session) LoadHistory(path string) error {
	if err := s.history.Load(path); err != nil {
		if s.log != nil {
			s.log.Warn("history load failed", "path", path, "err", err)
		}
		return err
	}
	if s.log != nil {
		s.log.Debug("history loaded", "path", path, "entries", s.history.Len())
	}
	return nil
}

// SaveHistory writes all entries to the file at path, newline
// delimited.
func (s *Session) SaveHistory(path string) error {
	if err := s.history.Save(path); err != nil {
		if s.log != nil {
			s.log.Warn("history save failed", "path", path, "err", err)
		}
		return err
	}
	if s.log != nil {
		s.log.Debug("history saved", "path", path, "entries", s.history.Len())
	}
	return nil
}

// ReadLine runs one line-read transaction: it switches the terminal to
// raw mode, paints the prompt, and dispatches decoded keys until the
// line is accepted or interrupted. The terminal mode is restored on
// every exit path. Accepted non-empty lines are appended to the
// history. ErrInterrupted distinguishes a user abort from an I/O
// failure.
func (s *Session) ReadLine() ([]byte, error) {
	if err := s.tty.MakeRaw(); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.tty.Restore(); err != nil && s.log != nil {
			s.log.Warn("terminal restore failed", "err", err)
		}
	}()
	if s.log != nil {
		s.log.Debug("line read start", "multi", s.multi)
	}

	d := &decoder{r: s.tty}
	r := newRenderer(s.tty, s.prompt, s.multi)
	buf := &lineBuffer{}
	if err := r.refresh(buf); err != nil {
		return nil, err
	}

	// Draft stashed away while browsing history; restored when the
	// browsing cursor returns to the live edit.
	var stash []byte
	stashed := false

	for {
		k, err := d.next()
		if err != nil {
			return nil, err
		}
		if k.kind == keyTab {
			if s.completer == nil {
				continue
			}
			sub, ok, err := s.cycleCompletions(d, r, buf)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			k = sub
		}

		switch k.kind {
		case keyHome:
			buf.moveTo(0)
		case keyEnd:
			buf.moveTo(buf.len())
		case keyLeft:
			if buf.pos == 0 {
				continue
			}
			buf.moveTo(buf.pos - 1)
		case keyRight:
			if buf.pos == buf.len() {
				continue
			}
			buf.moveTo(buf.pos + 1)
		case keyBackspace:
			if buf.pos == 0 || buf.len() == 0 {
				continue
			}
			buf.deleteBackward()
		case keyDelete:
			if buf.pos >= buf.len() {
				continue
			}
			buf.deleteForward()
		case keyEOFOrDelete:
			if buf.len() == 0 {
				if s.log != nil {
					s.log.Debug("line read interrupted", "reason", "eof")
				}
				return nil, ErrInterrupted
			}
			if buf.pos >= buf.len() {
				continue
			}
			buf.deleteForward()
		case keyInterrupt:
			if s.log != nil {
				s.log.Debug("line read interrupted", "reason", "ctrl-c")
			}
			return nil, ErrInterrupted
		case keyKillEnd:
			buf.killToEnd()
		case keyClearScreen:
			if err := r.clearScreen(buf); err != nil {
				return nil, err
			}
			continue
		case keyUp:
			entry, ok := s.history.Prev()
			if !ok {
				continue
			}
			if !stashed {
				stash = append(stash[:0], buf.bytes()...)
				stashed = true
			}
			buf.set(entry)
		case keyDown:
			entry, ok := s.history.Next()
			if ok {
				buf.set(entry)
			} else if stashed {
				stashed = false
				buf.set(stash)
				stash = stash[:0]
			} else {
				continue
			}
		case keyEnter:
			return s.accept(r, buf)
		case keyInsert:
			buf.insert(k.b)
		case keyNone:
			continue
		}

		if err := r.refresh(buf); err != nil {
			return nil, err
		}
	}
}

func (s *Session) accept(r *renderer, buf *lineBuffer) ([]byte, error) {
	if err := r.finish(buf); err != nil {
		return nil, err
	}
	line := append([]byte(nil), buf.bytes()...)
	if len(line) > 0 {
		s.history.Append(line)
	}
	if s.log != nil {
		s.log.Trace("line read done", "len", len(line))
	}
	return line, nil
}

// cycleCompletions runs the Tab sub-loop: it shows candidates in place
// until a non-Tab key arrives. ESC restores the pre-completion buffer
// and cursor; any other key keeps the shown candidate. The terminating
// key is handed back for reprocessing through the single-byte
// classifier, so e.g. Enter accepts the chosen candidate immediately.
// ok is false when the provider returned no candidates and the buffer
// was left untouched.
func (s *Session) cycleCompletions(d *decoder, r *renderer, buf *lineBuffer) (sub key, ok bool, err error) {
	line := append([]byte(nil), buf.bytes()...)
	candidates := s.completer.Complete(line)
	if len(candidates) == 0 {
		return key{}, false, nil
	}
	if s.log != nil {
		s.log.Trace("completion start", "candidates", len(candidates))
	}
	backup := line
	backupPos := buf.pos
	for i := 0; ; i = (i + 1) % len(candidates) {
		buf.set(candidates[i])
		if err := r.refresh(buf); err != nil {
			return key{}, false, err
		}
		b, err := d.readByte()
		if err != nil {
			return key{}, false, err
		}
		switch b {
		case ctrlI:
			continue
		case esc:
			buf.set(backup)
			buf.moveTo(backupPos)
			if err := r.refresh(buf); err != nil {
				return key{}, false, err
			}
			return classify(b), true, nil
		default:
			return classify(b), true, nil
		}
	}
}
