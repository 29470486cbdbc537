// Package history keeps the ordered, size-bounded log of accepted
// lines and its newline-delimited file format.
package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
)

// History is an insertion-ordered log of accepted lines with a
// browsing cursor. The cursor ranges over [0, Len()]; Len() means "at
// the live edit", not browsing. Entries are never mutated once
// appended.
type History struct {
	entries [][]byte
	pos     int
	// limit bounds the log; 0 keeps every entry.
	limit int
}

// New returns a history retaining at most limit entries; limit 0 is
// unbounded.
func New(limit int) *History {
	return &History{limit: limit}
}

// Len reports the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Limit reports the configured bound; 0 is unbounded.
func (h *History) Limit() int { return h.limit }

// Append stores a copy of line at the tail, evicting the oldest entry
// when at capacity, and resets the browsing cursor to the live edit.
func (h *History) Append(line []byte) {
	h.append(line)
	h.pos = len(h.entries)
}

func (h *History) append(line []byte) {
	if h.limit > 0 && len(h.entries) == h.limit {
		h.entries = h.entries[:copy(h.entries, h.entries[1:])]
	}
	h.entries = append(h.entries, append([]byte(nil), line...))
}

// Prev moves the browsing cursor one entry back and returns the entry
// it now points at. It reports false at the oldest entry or when the
// history is empty; there is no wrap-around. The returned slice must
// not be modified.
func (h *History) Prev() ([]byte, bool) {
	if len(h.entries) == 0 || h.pos == 0 {
		return nil, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next moves the browsing cursor one entry forward. It reports false
// when the cursor reaches the live edit again or the history is empty.
func (h *History) Next() ([]byte, bool) {
	if len(h.entries) == 0 || h.pos == len(h.entries) {
		return nil, false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return nil, false
	}
	return h.entries[h.pos], true
}

// Load appends the entries stored at path. Entries are newline
// delimited; empty lines are skipped and a trailing entry without a
// final newline is still loaded. A missing file is not an error. The
// browsing cursor ends at the live edit.
func (h *History) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		h.append(line)
	}
	if len(h.entries) > 0 {
		h.pos = len(h.entries)
	}
	return nil
}

// Save writes every entry to path, one per line. Entries containing a
// newline are not representable in this format and would corrupt it on
// reload.
func (h *History) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	for _, entry := range h.entries {
		if _, err := w.Write(entry); err != nil {
			_ = file.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			_ = file.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}
	return nil
}
