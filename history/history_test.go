package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendEvictsOldestAtLimit(t *testing.T) {
	h := New(2)
	h.Append([]byte("a"))
	h.Append([]byte("b"))
	h.Append([]byte("c"))
	if h.Len() != 2 {
		t.Fatalf("expected 2 retained entries, got %d", h.Len())
	}
	entry, ok := h.Prev()
	if !ok || string(entry) != "c" {
		t.Fatalf("expected c, got %q ok=%v", entry, ok)
	}
	entry, ok = h.Prev()
	if !ok || string(entry) != "b" {
		t.Fatalf("expected b, got %q ok=%v", entry, ok)
	}
	if _, ok := h.Prev(); ok {
		t.Fatal("expected oldest entry to be the stop")
	}
}

func TestLimitZeroIsUnbounded(t *testing.T) {
	h := New(0)
	for i := 0; i < 100; i++ {
		h.Append([]byte{'x'})
	}
	if h.Len() != 100 {
		t.Fatalf("expected 100 entries, got %d", h.Len())
	}
}

func TestPrevNextReturnsToLiveEdit(t *testing.T) {
	h := New(0)
	h.Append([]byte("one"))
	h.Append([]byte("two"))
	h.Append([]byte("three"))

	want := []string{"three", "two", "one"}
	for i, w := range want {
		entry, ok := h.Prev()
		if !ok || string(entry) != w {
			t.Fatalf("prev %d: expected %q, got %q ok=%v", i, w, entry, ok)
		}
	}
	if _, ok := h.Prev(); ok {
		t.Fatal("expected prev to stop at oldest")
	}

	// Walking forward revisits the newer entries and then reports the
	// live edit with no entry.
	entry, ok := h.Next()
	if !ok || string(entry) != "two" {
		t.Fatalf("expected two, got %q ok=%v", entry, ok)
	}
	entry, ok = h.Next()
	if !ok || string(entry) != "three" {
		t.Fatalf("expected three, got %q ok=%v", entry, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected final next to land on the live edit")
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected next past the live edit to keep reporting false")
	}
}

func TestPrevNextEmptyHistory(t *testing.T) {
	h := New(0)
	if _, ok := h.Prev(); ok {
		t.Fatal("expected prev on empty history to report false")
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected next on empty history to report false")
	}
}

func TestAppendResetsBrowsingCursor(t *testing.T) {
	h := New(0)
	h.Append([]byte("one"))
	h.Append([]byte("two"))
	if _, ok := h.Prev(); !ok {
		t.Fatal("expected prev to succeed")
	}
	h.Append([]byte("three"))
	entry, ok := h.Prev()
	if !ok || string(entry) != "three" {
		t.Fatalf("expected cursor back at the tail after append, got %q ok=%v", entry, ok)
	}
}

func TestAppendCopiesLine(t *testing.T) {
	h := New(0)
	line := []byte("abc")
	h.Append(line)
	line[0] = 'Z'
	entry, ok := h.Prev()
	if !ok || string(entry) != "abc" {
		t.Fatalf("expected stored entry unaffected by caller mutation, got %q", entry)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h := New(0)
	h.Append([]byte("abc"))
	h.Append([]byte("de"))
	if err := h.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored := New(0)
	if err := restored.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", restored.Len())
	}
	entry, ok := restored.Prev()
	if !ok || string(entry) != "de" {
		t.Fatalf("expected de, got %q ok=%v", entry, ok)
	}
	entry, ok = restored.Prev()
	if !ok || string(entry) != "abc" {
		t.Fatalf("expected abc, got %q ok=%v", entry, ok)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	h := New(0)
	if err := h.Load(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("expected history unchanged, got %d entries", h.Len())
	}
}

func TestLoadSkipsEmptyLinesAndTrailingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("a\n\nb\nc"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := New(0)
	if err := h.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	entry, ok := h.Prev()
	if !ok || string(entry) != "c" {
		t.Fatalf("expected trailing entry without newline loaded, got %q ok=%v", entry, ok)
	}
}

func TestLoadRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := New(2)
	if err := h.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("expected limit enforced on load, got %d entries", h.Len())
	}
	entry, ok := h.Prev()
	if !ok || string(entry) != "c" {
		t.Fatalf("expected newest entries kept, got %q ok=%v", entry, ok)
	}
}
