package interactx

// lineBuffer holds the bytes of the line being edited plus the cursor
// position. Positions are byte offsets, never rune indexes; the
// invariant 0 <= pos <= len(data) holds after every operation.
type lineBuffer struct {
	data []byte
	pos  int
}

func (b *lineBuffer) len() int { return len(b.data) }

func (b *lineBuffer) bytes() []byte { return b.data }

// insert writes c at the cursor and advances it. Mid-line the byte
// under the cursor is overwritten rather than shifted right; only at
// end-of-line does the buffer grow.
func (b *lineBuffer) insert(c byte) {
	if b.pos < len(b.data) {
		b.data[b.pos] = c
	} else {
		b.data = append(b.data, c)
	}
	b.pos++
}

func (b *lineBuffer) deleteForward() {
	if b.pos >= len(b.data) {
		return
	}
	b.data = append(b.data[:b.pos], b.data[b.pos+1:]...)
}

func (b *lineBuffer) deleteBackward() {
	if b.pos == 0 {
		return
	}
	b.pos--
	b.data = append(b.data[:b.pos], b.data[b.pos+1:]...)
}

func (b *lineBuffer) moveTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.data) {
		pos = len(b.data)
	}
	b.pos = pos
}

func (b *lineBuffer) killToEnd() {
	b.data = b.data[:b.pos]
}

// set replaces the contents with a copy of line and moves the cursor to
// the end. Used by history recall and completion substitution.
func (b *lineBuffer) set(line []byte) {
	b.data = append(b.data[:0], line...)
	b.pos = len(b.data)
}

func (b *lineBuffer) reset() {
	b.data = b.data[:0]
	b.pos = 0
}
