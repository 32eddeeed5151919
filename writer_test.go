package bwf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bwf "github.com/brbzull0/libswoc"
)

func TestWriterBasicWrites(t *testing.T) {
	t.Parallel()
	w := bwf.NewWriter(make([]byte, 16))
	_, _ = w.WriteString("ab")
	_ = w.WriteByte('c')
	_, _ = w.Write([]byte("de"))
	_, _ = w.WriteRune('é')
	assert.Equal(t, "abcdeé", w.String())
	assert.Equal(t, 7, w.Extent())
	assert.Equal(t, 9, w.Remaining())
	assert.False(t, w.Truncated())
}

func TestWriterTruncation(t *testing.T) {
	t.Parallel()
	w := bwf.NewWriter(make([]byte, 3))
	n, err := w.WriteString("abcdef")
	require.NoError(t, err)
	assert.Equal(t, 6, n) // logical count, not physical
	assert.Equal(t, "abc", w.String())
	assert.Equal(t, 6, w.Extent())
	assert.True(t, w.Truncated())
	assert.Equal(t, 0, w.Remaining())

	// Further writes keep counting without storing.
	_ = w.WriteByte('!')
	assert.Equal(t, 7, w.Extent())
	assert.Equal(t, "abc", w.String())
}

func TestWriterZeroValueCounts(t *testing.T) {
	t.Parallel()
	var w bwf.Writer
	_, _ = w.WriteString("hello")
	assert.Equal(t, 5, w.Extent())
	assert.True(t, w.Truncated())
	assert.Empty(t, w.String())
}

func TestWriterAuxCommit(t *testing.T) {
	t.Parallel()
	w := bwf.NewWriter(make([]byte, 8))
	_, _ = w.WriteString("ab")
	aux := w.Aux()
	require.Len(t, aux, 6)
	n := copy(aux, "cd")
	w.Commit(n)
	assert.Equal(t, "abcd", w.String())
	assert.Equal(t, 4, w.Extent())
}

func TestWriterReset(t *testing.T) {
	t.Parallel()
	w := bwf.NewWriter(make([]byte, 8))
	_, _ = w.WriteString("junk")
	w.Reset()
	assert.Equal(t, 0, w.Extent())
	w.Print("{}", 1)
	assert.Equal(t, "1", w.String())
}

func TestWriterBytes(t *testing.T) {
	t.Parallel()
	w := bwf.NewWriter(make([]byte, 8))
	w.Print("{}{}", "a", 1)
	assert.Equal(t, []byte("a1"), w.Bytes())
}
