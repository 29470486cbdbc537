package interactx

// Completer produces completion candidates for the current line. It is
// invoked synchronously from the key-decode path and must return
// promptly; returning no candidates makes the Tab press a no-op.
type Completer interface {
	Complete(line []byte) [][]byte
}

// CompleterFunc adapts a plain function to the Completer interface.
type CompleterFunc func(line []byte) [][]byte

// Complete calls f.
func (f CompleterFunc) Complete(line []byte) [][]byte { return f(line) }
