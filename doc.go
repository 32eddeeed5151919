// Package bwf is an embedded text-formatting engine that renders brace
// templates into a caller-owned, bounded byte buffer with no intermediate
// heap allocation on the common path.
//
// The central entry points are [Writer.Print], [Writer.PrintNamed] and the
// precompiled [Writer.PrintFormat]; [Sprint] and [Fprint] are convenience
// wrappers for growable destinations.
//
//	buf := make([]byte, 128)
//	w := bwf.NewWriter(buf)
//	w.Print("connect to {} on {}", addr, port)
//
// # Placeholder syntax
//
// A placeholder is `{` [index-or-name] [`:`fields] [`:`extension] `}` with
// fields `[[fill]align][sign][#][min][.prec][,max][type]`. `{{` and `}}`
// escape literal braces; an empty `{}` consumes the next positional argument
// with default formatting. A digits-only leading segment is a positional
// index, anything else a name. See [ParseSpec] for the full grammar and
// [Spec] for field meanings.
//
// # Diagnostics instead of errors
//
// Formatting never fails and never aborts the caller's I/O path. A positional
// index past the argument count renders as `{~BAD INDEX i of N~}`, an
// unresolved name as `{~name~}`, an unrecognized type character as
// `{~INVALID TYPE~}`, and malformed bracing degrades to literal text.
// Overflowing the buffer truncates output while [Writer.Extent] keeps the
// logical length, so callers can grow and re-render (the [Sprint] pattern).
//
// # Named placeholders
//
// [Names] maps placeholder names to context-free generators and serves plain
// [Writer.Print] through the package [Global] registry. [ContextNames] is the
// context-bound flavor: its Bind method closes the registry over one call's
// context and yields the [BoundNames] resolver [Writer.PrintNamed] consumes.
// Registries must be fully populated before concurrent use; they are
// read-only during rendering.
//
// # Extending to new types
//
// A type implementing [Formatter] renders itself given the parsed [Spec],
// interpreting the Ext field as its own sub-grammar. The network address
// formatters ([FormatAddr], [FormatAddrPort]) are the worked example,
// including IPv6 zero-run compression and endpoint composition; they drive
// their sub-fields through [FormatInt] and [WriteAligned] exactly as a user
// extension would.
package bwf
