package bwf

import (
	"math"
	"strings"
)

// Align is the output field alignment of a [Spec].
type Align byte

const (
	AlignNone   Align = iota // no alignment requested
	AlignLeft                // '<'
	AlignRight               // '>'
	AlignCenter              // '^'
	AlignSign                // '=', fill between sign and digits
)

const (
	// DefaultType is the generic render kind used when a specifier names none.
	DefaultType byte = 'g'
	// InvalidType marks a specifier whose type character is not recognized.
	InvalidType byte = 0
	// LiteralType marks a compiled item that carries literal text in Ext.
	LiteralType byte = '"'

	// Unbounded is the default maximum width.
	Unbounded = math.MaxInt
)

// Spec is the parsed form of one placeholder body. It is value-like and
// immutable per occurrence; composite formatters copy it and adjust the copy
// for their sub-fields.
type Spec struct {
	Fill      byte   // fill character, default ' '
	Sign      byte   // '-', '+' or ' '
	Align     Align  // output field alignment
	Type      byte   // render kind tag
	RadixLead bool   // '#': print the base prefix (0x, 0b, 0o)
	Min       int    // minimum width
	Prec      int    // precision, -1 when unset
	Max       int    // maximum width, Unbounded when unset
	Index     int    // positional index, -1 when unset
	Name      string // placeholder name, empty for positional
	Ext       string // free-form extension, a per-formatter sub-grammar
}

// DefaultSpec is the specifier used where none is available, e.g. for `{}`.
var DefaultSpec = Spec{Fill: ' ', Sign: '-', Type: DefaultType, Prec: -1, Max: Unbounded, Index: -1}

// Character property table: one flag byte per byte value, built once and
// read-only afterward. Reads need no synchronization.
const (
	propAlignMask   = 0x0f
	propTypeChar    = 0x10
	propUpperType   = 0x20
	propNumericType = 0x40
	propSignChar    = 0x80
)

var specProps = buildSpecProps()

func buildSpecProps() (p [256]byte) {
	p['<'] = byte(AlignLeft)
	p['>'] = byte(AlignRight)
	p['^'] = byte(AlignCenter)
	p['='] = byte(AlignSign)

	for _, c := range []byte{'-', '+', ' '} {
		p[c] |= propSignChar
	}
	for _, c := range []byte("bBcdeEfFgGopPsSxX") {
		p[c] |= propTypeChar
	}
	for _, c := range []byte("bBdoxXpP") {
		p[c] |= propNumericType
	}
	for _, c := range []byte("BEFGPSX") {
		p[c] |= propUpperType
	}
	return p
}

// IsTypeChar reports whether c is a recognized type character.
func IsTypeChar(c byte) bool { return specProps[c]&propTypeChar != 0 }

// IsSignChar reports whether c is a sign character.
func IsSignChar(c byte) bool { return specProps[c]&propSignChar != 0 }

func alignOf(c byte) Align { return Align(specProps[c] & propAlignMask) }

// HasValidType reports whether the specifier's type character was recognized.
func (s *Spec) HasValidType() bool { return s.Type != InvalidType }

// HasNumericType reports whether the type renders as a number.
func (s *Spec) HasNumericType() bool { return specProps[s.Type]&propNumericType != 0 }

// HasUpperType reports whether the type is an upper case variant.
func (s *Spec) HasUpperType() bool { return specProps[s.Type]&propUpperType != 0 }

// HasPointerType reports whether the type renders as a raw pointer.
func (s *Spec) HasPointerType() bool { return s.Type == 'p' || s.Type == 'P' }

// IsLiteral reports whether the spec is a compiled literal item.
func (s *Spec) IsLiteral() bool { return s.Type == LiteralType }

// ParseSpec parses one placeholder body, without the enclosing braces:
//
//	[index-or-name] [':' [[fill]align][sign][#][min][.prec][,max][type] [':' ext]]
//
// A digits-only leading segment is a positional index; any other non-empty
// segment is a name. Every field is optional and absent fields keep the
// [DefaultSpec] value. An unrecognized type character yields a Spec with
// [InvalidType]; parsing itself never fails.
func ParseSpec(body string) Spec {
	spec := DefaultSpec

	key, rest, hasFields := strings.Cut(body, ":")
	if key != "" {
		if n, ok := parseUint(key); ok {
			spec.Index = n
		} else {
			spec.Name = key
		}
	}
	if !hasFields {
		return spec
	}

	fields, ext, hasExt := strings.Cut(rest, ":")
	if hasExt {
		spec.Ext = ext
	}

	// [[fill]align]
	if len(fields) >= 2 && alignOf(fields[1]) != AlignNone {
		spec.Fill = fields[0]
		spec.Align = alignOf(fields[1])
		fields = fields[2:]
	} else if len(fields) >= 1 && alignOf(fields[0]) != AlignNone {
		spec.Align = alignOf(fields[0])
		fields = fields[1:]
	}
	// [sign]
	if len(fields) >= 1 && IsSignChar(fields[0]) {
		spec.Sign = fields[0]
		fields = fields[1:]
	}
	// [#]
	if len(fields) >= 1 && fields[0] == '#' {
		spec.RadixLead = true
		fields = fields[1:]
	}
	// [min]
	fields = cutUint(fields, &spec.Min)
	// [.prec]
	if len(fields) >= 1 && fields[0] == '.' {
		fields = cutUint(fields[1:], &spec.Prec)
	}
	// [,max]
	if len(fields) >= 1 && fields[0] == ',' {
		fields = cutUint(fields[1:], &spec.Max)
	}
	// [type]
	if len(fields) >= 1 {
		if len(fields) == 1 && IsTypeChar(fields[0]) {
			spec.Type = fields[0]
		} else {
			spec.Type = InvalidType
		}
	}
	return spec
}

// parseUint parses a digits-only string. It rejects empty and non-digit
// input. Values too large for int saturate at [Unbounded] instead of
// wrapping, so an absurd width in a specifier degrades rather than corrupting
// downstream arithmetic.
func parseUint(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (Unbounded-9)/10 {
			n = Unbounded
			continue
		}
		n = n*10 + int(c-'0')
	}
	return n, len(s) > 0
}

// cutUint consumes a leading decimal run from s into *dst, if present.
func cutUint(s string, dst *int) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		n, _ := parseUint(s[:i])
		*dst = n
	}
	return s[i:]
}
