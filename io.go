package crc32c

import "io"

// Writer wraps an io.Writer and folds every written byte into a running
// CRC-32C. Not safe for concurrent use.
type Writer struct {
	w      io.Writer
	crc    uint32
	engine Engine
}

// NewWriter creates a new checksumming writer using the active engine.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, engine: activeEngine}
}

// Write implements io.Writer. Only bytes accepted by the underlying
// writer are folded into the checksum.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.crc = update(cw.engine, cw.crc, p[:n])
	}
	return n, err
}

// Sum returns the current checksum value.
func (cw *Writer) Sum() uint32 {
	return cw.crc
}

// Reset resets the checksum to initial state.
func (cw *Writer) Reset() {
	cw.crc = 0
}

// Reader wraps an io.Reader and folds every read byte into a running
// CRC-32C. Not safe for concurrent use.
type Reader struct {
	r      io.Reader
	crc    uint32
	engine Engine
}

// NewReader creates a new checksumming reader using the active engine.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, engine: activeEngine}
}

// Read implements io.Reader.
func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.crc = update(cr.engine, cr.crc, p[:n])
	}
	return n, err
}

// Sum returns the current checksum value.
func (cr *Reader) Sum() uint32 {
	return cr.crc
}

// Reset resets the checksum to initial state.
func (cr *Reader) Reset() {
	cr.crc = 0
}

// Verify checks if the computed checksum matches the expected value.
func (cr *Reader) Verify(expected uint32) error {
	if actual := cr.crc; actual != expected {
		return &ChecksumMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}
