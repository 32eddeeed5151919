package bwf

import "strings"

// GeneratorFunc produces output for a named specifier without external
// context. The name that triggered the call is in spec.Name.
type GeneratorFunc func(w *Writer, spec Spec)

// ContextGenerator produces output for a named specifier given the context
// the registry was bound to for this render call.
type ContextGenerator[T any] func(w *Writer, spec Spec, ctx *T)

// BoundNames is a callable resolver: a name registry closed over one render
// call's context. A resolver from [ContextNames.Bind] holds a non-owning
// reference to the context and must not outlive it.
type BoundNames func(w *Writer, spec Spec)

// Names maps placeholder names to context-free generators. Populate it with
// [Names.Assign] during setup; rendering only reads it, so all assignment
// must finish before concurrent use.
type Names struct {
	m map[string]GeneratorFunc
}

// NewNames returns an empty registry.
func NewNames() *Names {
	return &Names{m: make(map[string]GeneratorFunc)}
}

// Assign binds generator to name and returns the registry for chaining. The
// name is copied, so callers may pass transient strings.
func (n *Names) Assign(name string, generator GeneratorFunc) *Names {
	n.m[strings.Clone(name)] = generator
	return n
}

// Bind returns a resolver usable with any render call.
func (n *Names) Bind() BoundNames {
	return func(w *Writer, spec Spec) {
		if g, ok := n.m[spec.Name]; ok {
			g(w, spec)
		} else {
			missingName(w, spec.Name)
		}
	}
}

// Global is the registry consulted by [Writer.Print] and, for names left
// unresolved by [Format.Bind], by [Writer.PrintFormat]. Populate it at
// process start; it is read-only during rendering.
var Global = NewNames()

// globalBound is built once so Print does not close over Global per call.
// The resolver reads the map at render time, so later Assign calls on
// Global are still seen.
var globalBound = Global.Bind()

// ContextNames maps placeholder names to generators that need an external
// context of type T. The registry itself is context-free; [ContextNames.Bind]
// closes it over one specific context for the duration of a render call.
type ContextNames[T any] struct {
	m map[string]ContextGenerator[T]
}

// NewContextNames returns an empty context-bound registry.
func NewContextNames[T any]() *ContextNames[T] {
	return &ContextNames[T]{m: make(map[string]ContextGenerator[T])}
}

// Assign binds generator to name. The name is copied.
func (n *ContextNames[T]) Assign(name string, generator ContextGenerator[T]) *ContextNames[T] {
	n.m[strings.Clone(name)] = generator
	return n
}

// AssignBound binds a context-free generator to name, for names in a
// context-bound registry that do not need the context.
func (n *ContextNames[T]) AssignBound(name string, generator GeneratorFunc) *ContextNames[T] {
	return n.Assign(name, func(w *Writer, spec Spec, _ *T) { generator(w, spec) })
}

// Bind closes the registry over ctx. The resolver is valid only while ctx
// is; concurrent renders against the same bound context are safe only if the
// context itself is safe for concurrent reads.
func (n *ContextNames[T]) Bind(ctx *T) BoundNames {
	return func(w *Writer, spec Spec) {
		if g, ok := n.m[spec.Name]; ok {
			g(w, spec, ctx)
		} else {
			missingName(w, spec.Name)
		}
	}
}

// missingName writes the in-band diagnostic for an unresolved name. A
// mistyped placeholder must not crash the call site it instruments.
func missingName(w *Writer, name string) {
	_, _ = w.WriteString("{~")
	_, _ = w.WriteString(name)
	_, _ = w.WriteString("~}")
}
