package bwf

import (
	"io"
	"unicode/utf8"
)

// Writer is a bounded output sink over a caller-owned byte slice. Writes past
// the end of the buffer are dropped, but the logical extent keeps counting, so
// a caller can detect truncation, grow the destination to [Writer.Extent]
// bytes, and render again (see [Sprint] for the canonical two-pass pattern).
//
// The zero value (nil buffer) is a pure extent counter: nothing is stored,
// everything is measured. Writes never fail.
type Writer struct {
	buf   []byte
	size  int // logical extent; may exceed len(buf)
	cells int // display-cell extent, tracked as bytes are written
}

// NewWriter returns a Writer over buf. The Writer does not grow buf; it fills
// it and then counts.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// committed returns the number of bytes physically present in the buffer.
func (w *Writer) committed() int {
	if w.size < len(w.buf) {
		return w.size
	}
	return len(w.buf)
}

// Write appends p, truncating silently at capacity. It always reports len(p)
// written and a nil error so the Writer can sit behind io.Writer plumbing.
func (w *Writer) Write(p []byte) (int, error) {
	copy(w.buf[w.committed():], p)
	w.size += len(p)
	w.cells += cellWidth(p)
	return len(p), nil
}

// WriteString appends s, truncating silently at capacity.
func (w *Writer) WriteString(s string) (int, error) {
	copy(w.buf[w.committed():], s)
	w.size += len(s)
	w.cells += cellWidthString(s)
	return len(s), nil
}

// WriteByte appends a single byte. It never fails.
func (w *Writer) WriteByte(c byte) error {
	if n := w.committed(); n < len(w.buf) {
		w.buf[n] = c
	}
	w.size++
	w.cells++
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (w *Writer) WriteRune(r rune) (int, error) {
	if r < utf8.RuneSelf {
		_ = w.WriteByte(byte(r))
		return 1, nil
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	copy(w.buf[w.committed():], tmp[:n])
	w.size += n
	w.cells += runeCells(r)
	return n, nil
}

// Remaining reports how many bytes of physical capacity are left.
func (w *Writer) Remaining() int {
	return len(w.buf) - w.committed()
}

// Extent reports the logical number of bytes written, including bytes dropped
// past capacity.
func (w *Writer) Extent() int { return w.size }

// Truncated reports whether any output was dropped for lack of capacity.
func (w *Writer) Truncated() bool { return w.size > len(w.buf) }

// Aux exposes the raw unwritten tail of the buffer. Renderers may fill a
// prefix of it directly and then account for the bytes with [Writer.Commit],
// avoiding an intermediate copy.
func (w *Writer) Aux() []byte { return w.buf[w.committed():] }

// Commit advances the logical extent by n bytes previously placed in the
// tail returned by [Writer.Aux]. Committed bytes count one display cell
// each; multi-byte content belongs on the Write methods, which measure it.
func (w *Writer) Commit(n int) {
	w.size += n
	w.cells += n
}

// Bytes returns the committed output.
func (w *Writer) Bytes() []byte { return w.buf[:w.committed()] }

// String returns the committed output as a string.
func (w *Writer) String() string { return string(w.Bytes()) }

// Reset discards all output, keeping the buffer.
func (w *Writer) Reset() {
	w.size = 0
	w.cells = 0
}

// Sprint renders format against args into a string sized exactly to the
// output. It renders once through a zero-capacity Writer to learn the extent,
// then again into a buffer of that size. Rendering has no side effects beyond
// writing bytes, so the second pass is identical to the first.
func Sprint(format string, args ...any) string {
	var meter Writer
	meter.Print(format, args...)
	buf := make([]byte, meter.Extent())
	NewWriter(buf).Print(format, args...)
	return string(buf)
}

// Fprint renders format against args and writes the result to w.
func Fprint(w io.Writer, format string, args ...any) (int, error) {
	return io.WriteString(w, Sprint(format, args...))
}
