package bwf

import "strings"

// Format is a precompiled template: an ordered sequence of literal spans and
// parsed specifiers, with positional auto-indices already resolved. It is
// immutable after construction and safe for concurrent renders with
// per-call arguments.
type Format struct {
	items []formatItem
}

type formatItem struct {
	spec Spec
	gen  GeneratorFunc // pre-resolved generator for a named item, may be nil
}

// Compile parses format once so repeated renders skip tokenizing and
// specifier parsing. Literal text is carried in items with [LiteralType];
// name and extension spans are copied out of the input so the compiled form
// does not borrow from it.
func Compile(format string) *Format {
	f := &Format{}
	cursor := 0
	for len(format) > 0 {
		literal, body, rest, hasSpec := nextToken(format)
		format = rest
		if literal != "" {
			spec := DefaultSpec
			spec.Type = LiteralType
			spec.Ext = strings.Clone(literal)
			f.items = append(f.items, formatItem{spec: spec})
		}
		if !hasSpec {
			continue
		}
		spec := ParseSpec(body)
		spec.Name = strings.Clone(spec.Name)
		spec.Ext = strings.Clone(spec.Ext)
		if spec.Name == "" && spec.Index < 0 && spec.HasValidType() {
			spec.Index = cursor
			cursor++
		}
		f.items = append(f.items, formatItem{spec: spec})
	}
	return f
}

// Bind returns a copy of the compiled format with named items resolved
// against a context-free registry, so renders skip the lookup. Names absent
// from the registry stay unresolved; at render time those fall back to
// [Global] and then to their miss marker.
func (f *Format) Bind(names *Names) *Format {
	bound := &Format{items: make([]formatItem, len(f.items))}
	copy(bound.items, f.items)
	for i := range bound.items {
		it := &bound.items[i]
		if it.spec.IsLiteral() || it.spec.Name == "" {
			continue
		}
		if g, ok := names.m[it.spec.Name]; ok {
			it.gen = g
		}
	}
	return bound
}

// PrintFormat renders a compiled format against args, with the same
// diagnostics and truncation behavior as [Writer.Print]. Named items not
// pre-resolved by [Format.Bind] resolve through [Global], matching what a
// direct [Writer.Print] of the same template would produce.
func (w *Writer) PrintFormat(f *Format, args ...any) *Writer {
	table := dispatchFor(args)
	for i := range f.items {
		it := &f.items[i]
		if it.spec.IsLiteral() {
			_, _ = w.WriteString(it.spec.Ext)
			continue
		}
		if !it.spec.HasValidType() {
			_, _ = w.WriteString("{~INVALID TYPE~}")
			continue
		}
		width := w.Remaining()
		if it.spec.Max < width {
			width = it.spec.Max
		}
		lw := Writer{buf: w.Aux()[:width]}
		switch {
		case it.gen != nil:
			it.gen(&lw, it.spec)
		case it.spec.Name != "":
			if g, ok := Global.m[it.spec.Name]; ok {
				g(&lw, it.spec)
			} else {
				missingName(&lw, it.spec.Name)
			}
		case it.spec.Index >= 0 && it.spec.Index < len(args):
			table[it.spec.Index](&lw, it.spec, args[it.spec.Index])
		default:
			badIndex(&lw, it.spec.Index, len(args))
		}
		if lw.Extent() > 0 {
			w.commitAligned(&it.spec, &lw)
		}
	}
	return w
}
