package bwf

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// cellWidth measures content in display cells. Pure ASCII is counted
// directly so the common path allocates nothing; anything else is decoded
// rune by rune through go-runewidth so wide runes pad correctly.
func cellWidth(b []byte) int {
	n := 0
	for i := 0; i < len(b); {
		if b[i] < 0x80 {
			n++
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		n += runewidth.RuneWidth(r)
		i += size
	}
	return n
}

func cellWidthString(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return runewidth.StringWidth(s)
		}
	}
	return len(s)
}

func runeCells(r rune) int {
	if r < 0x80 {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// padSplit computes the fill distribution for a field of width cells against
// spec.Min. AlignNone behaves as left alignment; the caller handles
// AlignSign's shift-after-sign placement.
func padSplit(align Align, pad int) (left, right int) {
	switch align {
	case AlignRight, AlignSign:
		return pad, 0
	case AlignCenter:
		return pad / 2, pad - pad/2
	default: // AlignNone, AlignLeft
		return 0, pad
	}
}

// writeFill fills physically up to capacity and commits the full logical
// count, so a saturated minimum width costs capacity work, not n work.
func writeFill(w *Writer, n int, fill byte) {
	if n <= 0 {
		return
	}
	b := w.Aux()
	if len(b) > n {
		b = b[:n]
	}
	fillBytes(b, fill)
	w.Commit(n)
}

// WriteAligned copies raw into w applying the fill, width and alignment
// policy of spec. Content longer than spec.Max is truncated from the end;
// content narrower than spec.Min is padded with spec.Fill. With [AlignSign]
// a leading sign character is emitted before the fill, so numeric zero fill
// lands between the sign and the digits. Composite formatters use this to
// drive their sub-fields through the same policy as top-level values.
func WriteAligned(w *Writer, spec Spec, raw []byte) {
	if len(raw) > spec.Max {
		raw = raw[:spec.Max]
	}
	pad := spec.Min - cellWidth(raw)
	if pad <= 0 {
		_, _ = w.Write(raw)
		return
	}
	if spec.Align == AlignSign && len(raw) > 0 && IsSignChar(raw[0]) {
		_ = w.WriteByte(raw[0])
		writeFill(w, pad, spec.Fill)
		_, _ = w.Write(raw[1:])
		return
	}
	left, right := padSplit(spec.Align, pad)
	writeFill(w, left, spec.Fill)
	_, _ = w.Write(raw)
	writeFill(w, right, spec.Fill)
}

// commitAligned folds the scratch writer lw, which rendered into w's own
// tail, back into w under spec's alignment policy. When no padding is needed
// the content is already in place and only the extent moves; otherwise the
// content is shifted within the tail (copy is overlap-safe) and the gaps are
// filled. Field width comes from lw's cell count, which is tracked as bytes
// are written, so a zero-capacity measuring pass pads identically to a
// sized one. Logical extent is preserved even past physical capacity.
func (w *Writer) commitAligned(spec *Spec, lw *Writer) {
	ext := lw.Extent()
	if ext == 0 {
		return
	}
	phys := lw.committed()
	content := ext
	width := lw.cells
	if spec.Max < content {
		content = spec.Max
		width = content
	}
	pad := spec.Min - width
	if pad <= 0 {
		w.Commit(content)
		return
	}

	raw := w.Aux() // content occupies raw[:phys]
	keep := 0
	if spec.Align == AlignSign && phys > 0 && IsSignChar(raw[0]) {
		keep = 1
	}
	left, right := padSplit(spec.Align, pad)
	if left > 0 {
		if keep+left < len(raw) {
			copy(raw[keep+left:], raw[keep:phys])
		}
		fillBytes(raw[min(keep, len(raw)):min(keep+left, len(raw))], spec.Fill)
	}
	if right > 0 && left+phys < len(raw) {
		fillBytes(raw[left+phys:min(left+phys+right, len(raw))], spec.Fill)
	}
	w.Commit(left + content + right)
}

func fillBytes(b []byte, fill byte) {
	for i := range b {
		b[i] = fill
	}
}
