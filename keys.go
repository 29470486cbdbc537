package interactx

import "io"

type keyKind int

const (
	keyInsert keyKind = iota
	keyHome
	keyEnd
	keyLeft
	keyRight
	keyBackspace
	keyDelete
	keyEOFOrDelete
	keyEnter
	keyInterrupt
	keyKillEnd
	keyClearScreen
	keyTab
	keyUp
	keyDown
	keyNone
)

type key struct {
	kind keyKind
	b    byte
}

const (
	ctrlA     = 0x01
	ctrlB     = 0x02
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlE     = 0x05
	ctrlF     = 0x06
	ctrlH     = 0x08
	ctrlI     = 0x09
	ctrlJ     = 0x0a
	ctrlK     = 0x0b
	ctrlL     = 0x0c
	ctrlM     = 0x0d
	esc       = 0x1b
	backspace = 0x7f
)

// decoder turns raw terminal bytes into logical keys. It issues one
// blocking single-byte read at a time and never reads further than the
// escape form in progress requires, so unconsumed input stays available
// to the next decode cycle.
type decoder struct {
	r   io.Reader
	one [1]byte
}

func (d *decoder) readByte() (byte, error) {
	if _, err := io.ReadFull(d.r, d.one[:]); err != nil {
		return 0, err
	}
	return d.one[0], nil
}

func (d *decoder) next() (key, error) {
	b, err := d.readByte()
	if err != nil {
		return key{}, err
	}
	if b == esc {
		return d.escape()
	}
	return classify(b), nil
}

// escape resolves a CSI sequence after a leading ESC. Unknown forms are
// never fatal: the trailing byte is reclassified as if it had arrived
// standalone, so the decoder always makes forward progress.
func (d *decoder) escape() (key, error) {
	b, err := d.readByte()
	if err != nil {
		return key{}, err
	}
	if b != '[' {
		return classify(b), nil
	}
	c, err := d.readByte()
	if err != nil {
		return key{}, err
	}
	switch c {
	case '1': // Home, trailing ~
		if err := d.discard(); err != nil {
			return key{}, err
		}
		return key{kind: keyHome}, nil
	case '2', '5', '6': // Insert, PgUp, PgDn: consume and ignore
		if err := d.discard(); err != nil {
			return key{}, err
		}
		return key{kind: keyNone}, nil
	case '3': // Delete, trailing ~
		if err := d.discard(); err != nil {
			return key{}, err
		}
		return key{kind: keyDelete}, nil
	case '4': // End, trailing ~
		if err := d.discard(); err != nil {
			return key{}, err
		}
		return key{kind: keyEnd}, nil
	case 'A':
		return key{kind: keyUp}, nil
	case 'B':
		return key{kind: keyDown}, nil
	case 'C':
		return key{kind: keyRight}, nil
	case 'D':
		return key{kind: keyLeft}, nil
	default:
		return classify(c), nil
	}
}

func (d *decoder) discard() error {
	_, err := d.readByte()
	return err
}

// classify maps a single byte to its logical key. A bare ESC at this
// point is a degraded escape form and is dropped rather than re-entering
// sequence parsing.
func classify(b byte) key {
	switch b {
	case ctrlA:
		return key{kind: keyHome}
	case ctrlB:
		return key{kind: keyLeft}
	case ctrlC:
		return key{kind: keyInterrupt}
	case ctrlD:
		return key{kind: keyEOFOrDelete}
	case ctrlE:
		return key{kind: keyEnd}
	case ctrlF:
		return key{kind: keyRight}
	case ctrlH, backspace:
		return key{kind: keyBackspace}
	case ctrlI:
		return key{kind: keyTab}
	case ctrlJ, ctrlM:
		return key{kind: keyEnter}
	case ctrlK:
		return key{kind: keyKillEnd}
	case ctrlL:
		return key{kind: keyClearScreen}
	case esc:
		return key{kind: keyNone}
	default:
		return key{kind: keyInsert, b: b}
	}
}
