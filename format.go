package bwf

// Print renders format against args into w and returns w for chaining.
//
// Positional specifiers pull arguments by explicit index or, for bare `{}`,
// from an auto-advancing cursor; explicit indices do not move the cursor.
// Named specifiers resolve through the package [Global] registry. Formatting
// never fails: bad indices, unknown names and invalid specifiers render as
// in-band diagnostic markers, and output is truncated at capacity while
// [Writer.Extent] keeps the would-be length.
func (w *Writer) Print(format string, args ...any) *Writer {
	return w.PrintNamed(format, globalBound, args...)
}

// PrintNamed renders format like [Writer.Print] but resolves named
// specifiers through the supplied resolver, typically obtained from
// [Names.Bind] or [ContextNames.Bind].
func (w *Writer) PrintNamed(format string, names BoundNames, args ...any) *Writer {
	table := dispatchFor(args)
	cursor := 0
	for len(format) > 0 {
		literal, body, rest, hasSpec := nextToken(format)
		format = rest
		if literal != "" {
			_, _ = w.WriteString(literal)
		}
		if !hasSpec {
			continue
		}
		spec := ParseSpec(body)
		w.renderSpec(&spec, table, args, &cursor, names)
	}
	return w
}

// renderSpec renders one specifier: the value goes into a scratch region
// carved from w's own tail, bounded by both the remaining capacity and the
// specifier's max width, and the result is folded back in under the
// alignment policy. The scratch is stack-scoped to this one step.
func (w *Writer) renderSpec(spec *Spec, table dispatchTable, args []any, cursor *int, names BoundNames) {
	if !spec.HasValidType() {
		_, _ = w.WriteString("{~INVALID TYPE~}")
		return
	}
	width := w.Remaining()
	if spec.Max < width {
		width = spec.Max
	}
	lw := Writer{buf: w.Aux()[:width]}

	if spec.Name != "" {
		if names != nil {
			names(&lw, *spec)
		} else {
			missingName(&lw, spec.Name)
		}
	} else {
		idx := spec.Index
		if idx < 0 {
			idx = *cursor
			*cursor++
		}
		if idx >= 0 && idx < len(args) {
			table[idx](&lw, *spec, args[idx])
		} else {
			badIndex(&lw, idx, len(args))
		}
	}
	if lw.Extent() > 0 {
		w.commitAligned(spec, &lw)
	}
}

// badIndex writes the diagnostic for a positional reference past the
// supplied argument count. Formatting must never abort the caller's I/O
// path, so the problem is made visible in the output instead.
func badIndex(w *Writer, idx, count int) {
	_, _ = w.WriteString("{~BAD INDEX ")
	FormatInt(w, DefaultSpec, uint64(idx), false)
	_, _ = w.WriteString(" of ")
	FormatInt(w, DefaultSpec, uint64(count), false)
	_, _ = w.WriteString("~}")
}
