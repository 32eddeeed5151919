package bwf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTokenLiteralOnly(t *testing.T) {
	t.Parallel()
	lit, body, rest, found := nextToken("plain text")
	assert.Equal(t, "plain text", lit)
	assert.Empty(t, body)
	assert.Empty(t, rest)
	assert.False(t, found)
}

func TestNextTokenEscapedOpen(t *testing.T) {
	t.Parallel()
	lit, _, rest, found := nextToken("a {{ b")
	assert.Equal(t, "a {", lit)
	assert.Equal(t, " b", rest)
	assert.False(t, found)
}

func TestNextTokenEscapedClose(t *testing.T) {
	t.Parallel()
	lit, _, rest, found := nextToken("a }} b")
	assert.Equal(t, "a }", lit)
	assert.Equal(t, " b", rest)
	assert.False(t, found)
}

func TestNextTokenEmptySpec(t *testing.T) {
	t.Parallel()
	lit, body, rest, found := nextToken("x{}y")
	assert.Equal(t, "x", lit)
	assert.Empty(t, body)
	assert.Equal(t, "y", rest)
	assert.True(t, found) // empty-but-present specifier
}

func TestNextTokenUnbalancedOpen(t *testing.T) {
	t.Parallel()
	lit, _, rest, found := nextToken("oops {0 end")
	assert.Equal(t, "oops {0 end", lit)
	assert.Empty(t, rest)
	assert.False(t, found)
}

func TestNextTokenLoneClose(t *testing.T) {
	t.Parallel()
	lit, body, _, found := nextToken("a } b {0}")
	assert.Equal(t, "a } b ", lit)
	assert.Equal(t, "0", body)
	assert.True(t, found)
}

func TestSpecPropsAlignCodes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, AlignLeft, alignOf('<'))
	assert.Equal(t, AlignRight, alignOf('>'))
	assert.Equal(t, AlignCenter, alignOf('^'))
	assert.Equal(t, AlignSign, alignOf('='))
	assert.Equal(t, AlignNone, alignOf('q'))
}

func TestSpecPropsFlags(t *testing.T) {
	t.Parallel()
	assert.True(t, IsSignChar('+'))
	assert.True(t, IsSignChar(' '))
	assert.False(t, IsSignChar('#'))
	assert.True(t, IsTypeChar('x'))
	assert.False(t, IsTypeChar('q'))

	s := Spec{Type: 'X'}
	assert.True(t, s.HasNumericType())
	assert.True(t, s.HasUpperType())
	s.Type = 's'
	assert.False(t, s.HasNumericType())
}

func TestParseUint(t *testing.T) {
	t.Parallel()
	n, ok := parseUint("042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = parseUint("")
	assert.False(t, ok)
	_, ok = parseUint("4x")
	assert.False(t, ok)

	n, ok = parseUint("9999999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, Unbounded, n) // saturates instead of wrapping
}

func TestPadSplit(t *testing.T) {
	t.Parallel()
	l, r := padSplit(AlignRight, 4)
	assert.Equal(t, [2]int{4, 0}, [2]int{l, r})
	l, r = padSplit(AlignLeft, 4)
	assert.Equal(t, [2]int{0, 4}, [2]int{l, r})
	l, r = padSplit(AlignCenter, 5)
	assert.Equal(t, [2]int{2, 3}, [2]int{l, r}) // extra fill goes right
	l, r = padSplit(AlignNone, 3)
	assert.Equal(t, [2]int{0, 3}, [2]int{l, r})
}

func TestCellWidthWideRunes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, cellWidth([]byte("hello")))
	assert.Equal(t, 2, cellWidth([]byte("你"))) // 3 bytes, 2 cells
	assert.Equal(t, 5, cellWidthString("hello"))
	assert.Equal(t, 3, cellWidthString("a你"))
}

func TestWriterTracksCells(t *testing.T) {
	t.Parallel()
	var w Writer // zero capacity, counts only
	_, _ = w.WriteString("a你")
	_, _ = w.Write([]byte("你"))
	_, _ = w.WriteRune('界')
	_ = w.WriteByte('!')
	assert.Equal(t, 11, w.Extent())
	assert.Equal(t, 8, w.cells)

	w.Reset()
	assert.Zero(t, w.cells)
}

func TestDispatchTableCachedPerSignature(t *testing.T) {
	t.Parallel()
	t1 := dispatchFor([]any{1, "a"})
	t2 := dispatchFor([]any{2, "b"})
	assert.Same(t, &t1[0], &t2[0]) // same cached table, not a rebuild

	// Arity is part of the key even when every entry is a nil type.
	one := dispatchFor([]any{nil})
	two := dispatchFor([]any{nil, nil})
	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
}

func TestExtFill(t *testing.T) {
	t.Parallel()
	fill, ok, rest := extFill("=ap")
	assert.True(t, ok)
	assert.Equal(t, byte('0'), fill)
	assert.Equal(t, "ap", rest)

	fill, ok, rest = extFill("*=f")
	assert.True(t, ok)
	assert.Equal(t, byte('*'), fill)
	assert.Equal(t, "f", rest)

	_, ok, rest = extFill("apf")
	assert.False(t, ok)
	assert.Equal(t, "apf", rest)
}

func TestCommitAlignedShiftInPlace(t *testing.T) {
	t.Parallel()
	w := NewWriter(make([]byte, 16))
	spec := DefaultSpec
	spec.Min = 5
	spec.Align = AlignRight
	spec.Fill = '*'
	lw := Writer{buf: w.Aux()}
	_, _ = lw.WriteString("ab")
	w.commitAligned(&spec, &lw)
	assert.Equal(t, "***ab", w.String())
}
