package interactx

import (
	"bytes"
	"fmt"
)

// renderer repaints the prompt and edit buffer after every mutation.
// In multi-line mode it mirrors the terminal's column wrapping in its
// own row bookkeeping: row records how many rows below the origin the
// cursor ended up on the last repaint, which is exactly how far up the
// next repaint must move before erasing.
type renderer struct {
	tty    TTY
	prompt []byte
	multi  bool
	row    int
}

func newRenderer(tty TTY, prompt []byte, multi bool) *renderer {
	return &renderer{tty: tty, prompt: prompt, multi: multi}
}

func (r *renderer) refresh(buf *lineBuffer) error {
	if r.multi {
		return r.refreshMulti(buf)
	}
	return r.refreshSingle(buf)
}

func (r *renderer) refreshSingle(buf *lineBuffer) error {
	var b bytes.Buffer
	b.WriteString("\x1b[0G\x1b[K")
	b.Write(r.prompt)
	b.Write(buf.bytes())
	fmt.Fprintf(&b, "\r\x1b[%dC", len(r.prompt)+buf.pos)
	_, err := r.tty.Write(b.Bytes())
	return err
}

func (r *renderer) refreshMulti(buf *lineBuffer) error {
	// The width may change between repaints; query it every time.
	col := r.tty.Width()
	if col <= 0 {
		col = 80
	}
	var b bytes.Buffer
	if r.row == 0 {
		b.WriteString("\x1b[0G\x1b[J")
	} else {
		fmt.Fprintf(&b, "\x1b[0G\x1b[%dA\x1b[J", r.row)
	}
	cnt := 0
	rows := 0
	stream := func(data []byte) {
		for _, c := range data {
			b.WriteByte(c)
			cnt++
			if cnt == col {
				b.WriteString("\n\x1b[0G")
				cnt = 0
				rows++
			}
		}
	}
	stream(r.prompt)
	stream(buf.bytes())
	b.WriteString("\r")
	if rows == 0 {
		b.WriteString("\x1b[0G")
	} else {
		fmt.Fprintf(&b, "\x1b[0G\x1b[%dA", rows)
	}
	pos := len(r.prompt) + buf.pos
	r.row = pos / col
	if r.row > 0 {
		fmt.Fprintf(&b, "\x1b[%dB", r.row)
	}
	if m := pos % col; m > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", m)
	}
	_, err := r.tty.Write(b.Bytes())
	return err
}

func (r *renderer) clearScreen(buf *lineBuffer) error {
	if _, err := r.tty.Write([]byte("\x1b[H\x1b[2J")); err != nil {
		return err
	}
	// The previous rows are gone with the screen.
	r.row = 0
	return r.refresh(buf)
}

// finish moves to the next terminal row after a line is accepted.
func (r *renderer) finish(buf *lineBuffer) error {
	_, err := fmt.Fprintf(r.tty, "\n\x1b[%dD", len(r.prompt)+buf.pos)
	return err
}
