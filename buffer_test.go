package interactx

import (
	"bytes"
	"testing"
)

func TestLineBufferInsertAppendsAtEnd(t *testing.T) {
	buf := &lineBuffer{}
	for _, c := range []byte("abc") {
		buf.insert(c)
	}
	if got := string(buf.bytes()); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if buf.pos != 3 {
		t.Fatalf("expected cursor at 3, got %d", buf.pos)
	}
}

func TestLineBufferInsertOverwritesMidLine(t *testing.T) {
	buf := &lineBuffer{}
	buf.set([]byte("abc"))
	buf.moveTo(1)
	buf.insert('X')
	if got := string(buf.bytes()); got != "aXc" {
		t.Fatalf("expected overwrite to yield aXc, got %q", got)
	}
	if buf.pos != 2 {
		t.Fatalf("expected cursor at 2, got %d", buf.pos)
	}
}

func TestLineBufferDeleteBackwardAtStartIsNoop(t *testing.T) {
	buf := &lineBuffer{}
	buf.deleteBackward()
	if buf.len() != 0 || buf.pos != 0 {
		t.Fatalf("expected empty buffer unchanged, got %q pos %d", buf.bytes(), buf.pos)
	}
	buf.set([]byte("ab"))
	buf.moveTo(0)
	buf.deleteBackward()
	if got := string(buf.bytes()); got != "ab" || buf.pos != 0 {
		t.Fatalf("expected ab unchanged at pos 0, got %q pos %d", got, buf.pos)
	}
}

func TestLineBufferDeleteForwardAtEndIsNoop(t *testing.T) {
	buf := &lineBuffer{}
	buf.set([]byte("ab"))
	buf.deleteForward()
	if got := string(buf.bytes()); got != "ab" {
		t.Fatalf("expected ab unchanged, got %q", got)
	}
}

func TestLineBufferDeleteForwardRemovesUnderCursor(t *testing.T) {
	buf := &lineBuffer{}
	buf.set([]byte("abc"))
	buf.moveTo(1)
	buf.deleteForward()
	if got := string(buf.bytes()); got != "ac" {
		t.Fatalf("expected ac, got %q", got)
	}
	if buf.pos != 1 {
		t.Fatalf("expected cursor to stay at 1, got %d", buf.pos)
	}
}

func TestLineBufferKillToEnd(t *testing.T) {
	buf := &lineBuffer{}
	buf.set([]byte("abcdef"))
	buf.moveTo(2)
	buf.killToEnd()
	if got := string(buf.bytes()); got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
}

func TestLineBufferMoveToClamps(t *testing.T) {
	buf := &lineBuffer{}
	buf.set([]byte("ab"))
	buf.moveTo(-5)
	if buf.pos != 0 {
		t.Fatalf("expected clamp to 0, got %d", buf.pos)
	}
	buf.moveTo(99)
	if buf.pos != 2 {
		t.Fatalf("expected clamp to 2, got %d", buf.pos)
	}
}

func TestLineBufferSetCopiesInput(t *testing.T) {
	src := []byte("abc")
	buf := &lineBuffer{}
	buf.set(src)
	src[0] = 'Z'
	if got := string(buf.bytes()); got != "abc" {
		t.Fatalf("expected buffer to own its bytes, got %q", got)
	}
}

func TestLineBufferInvariantHoldsUnderMixedOps(t *testing.T) {
	buf := &lineBuffer{}
	check := func(step int) {
		if buf.pos < 0 || buf.pos > buf.len() {
			t.Fatalf("step %d: cursor %d outside [0,%d]", step, buf.pos, buf.len())
		}
	}
	script := []func(){
		func() { buf.insert('a') },
		func() { buf.insert('b') },
		func() { buf.moveTo(0) },
		func() { buf.deleteBackward() },
		func() { buf.insert('c') },
		func() { buf.deleteForward() },
		func() { buf.moveTo(buf.len()) },
		func() { buf.deleteForward() },
		func() { buf.killToEnd() },
		func() { buf.deleteBackward() },
		func() { buf.set(bytes.Repeat([]byte{'x'}, 5)) },
		func() { buf.moveTo(3) },
		func() { buf.insert('y') },
		func() { buf.killToEnd() },
		func() { buf.reset() },
	}
	for i, op := range script {
		op()
		check(i)
	}
}
