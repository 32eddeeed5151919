package bwf_test

import (
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bwf "github.com/brbzull0/libswoc"
)

func TestCompileMatchesDirectPrint(t *testing.T) {
	t.Parallel()
	formats := []string{
		"plain literal",
		"{} and {}",
		"{1} before {0}",
		"escaped {{braces}} with {}",
		"{:*>6} {:#x}",
		"broken {0 tail",
	}
	args := []any{"alpha", 255}

	for _, format := range formats {
		f := bwf.Compile(format)
		direct := bwf.Sprint(format, args...)

		w := bwf.NewWriter(make([]byte, 128))
		w.PrintFormat(f, args...)
		if !assert.Equal(t, direct, w.String(), "format %q", format) {
			t.Logf("compiled form:\n%s", spew.Sdump(f))
		}
	}
}

func TestCompileAutoIndices(t *testing.T) {
	t.Parallel()
	f := bwf.Compile("{0} {} {}")
	w := bwf.NewWriter(make([]byte, 64))
	w.PrintFormat(f, "one", "two")
	assert.Equal(t, "one one two", w.String())
}

func TestCompileBadIndexDiagnostic(t *testing.T) {
	t.Parallel()
	f := bwf.Compile("{3}")
	w := bwf.NewWriter(make([]byte, 64))
	w.PrintFormat(f, "only")
	assert.Equal(t, "{~BAD INDEX 3 of 1~}", w.String())
}

func TestPrintFormatResolvesViaGlobal(t *testing.T) {
	// Mutates Global, so no t.Parallel: this must finish before the
	// parallel tests that render through Global start.
	bwf.Global.Assign("buildtag", func(w *bwf.Writer, _ bwf.Spec) {
		_, _ = w.WriteString("r1432")
	})

	w := bwf.NewWriter(make([]byte, 32))
	w.PrintFormat(bwf.Compile("tag {buildtag}"))
	require.Equal(t, "tag r1432", w.String())

	// An unbound compiled render and a direct Print agree.
	assert.Equal(t, bwf.Sprint("tag {buildtag}"), w.String())
}

func TestCompileUnboundNameRendersMarker(t *testing.T) {
	t.Parallel()
	f := bwf.Compile("hello {who}")
	w := bwf.NewWriter(make([]byte, 64))
	w.PrintFormat(f)
	assert.Equal(t, "hello {~who~}", w.String())
}

func TestFormatBindPreResolvesNames(t *testing.T) {
	t.Parallel()
	names := bwf.NewNames().Assign("host", func(w *bwf.Writer, _ bwf.Spec) {
		_, _ = w.WriteString("edge-2")
	})
	f := bwf.Compile("{host} up {} days").Bind(names)

	w := bwf.NewWriter(make([]byte, 64))
	w.PrintFormat(f, 12)
	require.Equal(t, "edge-2 up 12 days", w.String())

	// The original compiled form stays unbound.
	w2 := bwf.NewWriter(make([]byte, 64))
	w2.PrintFormat(bwf.Compile("{host}"), 0)
	assert.Equal(t, "{~host~}", w2.String())
}

func TestCompileDoesNotBorrowInput(t *testing.T) {
	t.Parallel()
	raw := []byte("tag {name::x} tail")
	f := bwf.Compile(string(raw))
	for i := range raw {
		raw[i] = '!'
	}
	w := bwf.NewWriter(make([]byte, 64))
	w.PrintFormat(f)
	assert.Equal(t, "tag {~name~} tail", w.String())
}

func TestCompiledFormatConcurrentRenders(t *testing.T) {
	t.Parallel()
	f := bwf.Compile("worker {} of {}")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			w := bwf.NewWriter(make([]byte, 32))
			w.PrintFormat(f, n, 8)
			assert.Equal(t, bwf.Sprint("worker {} of {}", n, 8), w.String())
		}(i)
	}
	wg.Wait()
}
