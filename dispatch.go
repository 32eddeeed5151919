package bwf

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// formatFunc renders one type-erased argument under a specifier.
type formatFunc func(w *Writer, spec Spec, v any)

// dispatchTable holds one formatFunc per argument position, so rendering an
// argument is a single indexed call with no per-call type inspection.
type dispatchTable []formatFunc

// maxKeyArgs caps the comparable cache key; longer argument lists fall back
// to a string key and pay one allocation per render.
const maxKeyArgs = 8

// sigKey is an argument-type signature. It is comparable, so cache lookups
// build it on the stack and allocate nothing. The arity is part of the key:
// untyped nil arguments leave nil entries, and without the count a lone nil
// and a pair of nils would collide.
type sigKey struct {
	n     int
	types [maxKeyArgs]reflect.Type
}

// Tables are built lazily, once per distinct signature for the process
// lifetime. Reads vastly outnumber writes.
var (
	dispatchMu  sync.RWMutex
	shortTables = map[sigKey]dispatchTable{}
	longTables  = map[string]dispatchTable{}
)

// dispatchFor returns the dispatch table for the argument list, building and
// caching it on first sight of the type signature.
func dispatchFor(args []any) dispatchTable {
	if len(args) == 0 {
		return nil
	}
	if len(args) <= maxKeyArgs {
		var key sigKey
		key.n = len(args)
		for i, a := range args {
			key.types[i] = reflect.TypeOf(a)
		}
		dispatchMu.RLock()
		table, ok := shortTables[key]
		dispatchMu.RUnlock()
		if ok {
			return table
		}
		table = buildTable(args)
		dispatchMu.Lock()
		if cached, ok := shortTables[key]; ok {
			table = cached
		} else {
			shortTables[key] = table
		}
		dispatchMu.Unlock()
		return table
	}

	var sb strings.Builder
	for _, a := range args {
		sb.WriteByte(';')
		if a == nil {
			sb.WriteString("<nil>")
		} else {
			sb.WriteString(reflect.TypeOf(a).String())
		}
	}
	key := sb.String()
	dispatchMu.RLock()
	table, ok := longTables[key]
	dispatchMu.RUnlock()
	if ok {
		return table
	}
	table = buildTable(args)
	dispatchMu.Lock()
	if cached, ok := longTables[key]; ok {
		table = cached
	} else {
		longTables[key] = table
	}
	dispatchMu.Unlock()
	return table
}

func buildTable(args []any) dispatchTable {
	table := make(dispatchTable, len(args))
	for i, a := range args {
		table[i] = formatterFor(reflect.TypeOf(a))
	}
	return table
}

var (
	formatterType = reflect.TypeOf((*Formatter)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// builtinFormatters binds exact argument types to direct, assertion-only
// render functions so the hot path never touches reflection.
var builtinFormatters = map[reflect.Type]formatFunc{
	reflect.TypeOf(int(0)):     signedFormatter[int](),
	reflect.TypeOf(int8(0)):    signedFormatter[int8](),
	reflect.TypeOf(int16(0)):   signedFormatter[int16](),
	reflect.TypeOf(int32(0)):   signedFormatter[int32](),
	reflect.TypeOf(int64(0)):   signedFormatter[int64](),
	reflect.TypeOf(uint(0)):    unsignedFormatter[uint](),
	reflect.TypeOf(uint8(0)):   unsignedFormatter[uint8](),
	reflect.TypeOf(uint16(0)):  unsignedFormatter[uint16](),
	reflect.TypeOf(uint32(0)):  unsignedFormatter[uint32](),
	reflect.TypeOf(uint64(0)):  unsignedFormatter[uint64](),
	reflect.TypeOf(uintptr(0)): unsignedFormatter[uintptr](),
	reflect.TypeOf(float32(0)): func(w *Writer, spec Spec, v any) { FormatFloat(w, spec, float64(v.(float32))) },
	reflect.TypeOf(float64(0)): func(w *Writer, spec Spec, v any) { FormatFloat(w, spec, v.(float64)) },
	reflect.TypeOf(false):      func(w *Writer, spec Spec, v any) { formatBool(w, spec, v.(bool)) },
	reflect.TypeOf(""):         func(w *Writer, spec Spec, v any) { formatString(w, spec, v.(string)) },
	reflect.TypeOf([]byte(nil)): func(w *Writer, spec Spec, v any) {
		formatString(w, spec, string(v.([]byte)))
	},
}

func signedFormatter[T ~int | ~int8 | ~int16 | ~int32 | ~int64]() formatFunc {
	return func(w *Writer, spec Spec, v any) {
		n := int64(v.(T))
		u := uint64(n)
		if n < 0 {
			u = -u
		}
		FormatInt(w, spec, u, n < 0)
	}
}

func unsignedFormatter[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr]() formatFunc {
	return func(w *Writer, spec Spec, v any) {
		FormatInt(w, spec, uint64(v.(T)), false)
	}
}

// formatterFor selects the render function for one argument type. Order of
// preference: the [Formatter] extension contract, an exact builtin binding,
// stringer/error, then reflection over the kind, then the generic fallback.
func formatterFor(t reflect.Type) formatFunc {
	if t == nil {
		return func(w *Writer, spec Spec, _ any) { formatString(w, spec, "<nil>") }
	}
	if t.Implements(formatterType) {
		return func(w *Writer, spec Spec, v any) { v.(Formatter).FormatTo(w, spec) }
	}
	if f, ok := builtinFormatters[t]; ok {
		return f
	}
	if f, ok := netFormatters[t]; ok {
		return f
	}
	if t.Implements(stringerType) {
		return func(w *Writer, spec Spec, v any) { formatString(w, spec, v.(fmt.Stringer).String()) }
	}
	if t.Implements(errorType) {
		return func(w *Writer, spec Spec, v any) { formatString(w, spec, v.(error).Error()) }
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(w *Writer, spec Spec, v any) {
			n := reflect.ValueOf(v).Int()
			u := uint64(n)
			if n < 0 {
				u = -u
			}
			FormatInt(w, spec, u, n < 0)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(w *Writer, spec Spec, v any) { FormatInt(w, spec, reflect.ValueOf(v).Uint(), false) }
	case reflect.Float32, reflect.Float64:
		return func(w *Writer, spec Spec, v any) { FormatFloat(w, spec, reflect.ValueOf(v).Float()) }
	case reflect.Bool:
		return func(w *Writer, spec Spec, v any) { formatBool(w, spec, reflect.ValueOf(v).Bool()) }
	case reflect.String:
		return func(w *Writer, spec Spec, v any) { formatString(w, spec, reflect.ValueOf(v).String()) }
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map:
		return func(w *Writer, spec Spec, v any) { formatPointer(w, spec, reflect.ValueOf(v).Pointer()) }
	}
	return formatAny
}
