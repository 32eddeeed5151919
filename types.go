package bwf

import (
	"fmt"
	"strconv"
)

// Formatter is the extension contract for new value types. A type that
// implements it renders itself given the outer specifier; the Ext field is
// the type's private sub-grammar. Implementations typically drive their
// sub-fields through [WriteAligned] or [FormatInt] and raw sink writes — see
// the network address formatters for a worked example.
type Formatter interface {
	FormatTo(w *Writer, spec Spec)
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

func radixOf(t byte) (radix uint64, digits string) {
	switch t {
	case 'b', 'B':
		return 2, hexLower
	case 'o':
		return 8, hexLower
	case 'x':
		return 16, hexLower
	case 'X':
		return 16, hexUpper
	default:
		return 10, hexLower
	}
}

// FormatInt renders n with the sign, radix, radix prefix, fill and width
// policy of spec. The conversion happens in a stack buffer, so there is no
// intermediate allocation. negative selects the leading '-'; n is the
// magnitude.
func FormatInt(w *Writer, spec Spec, n uint64, negative bool) {
	var tmp [72]byte // 64 binary digits + prefix + sign

	if spec.Type == 'c' {
		i := copy(tmp[:], string(rune(n)))
		WriteAligned(w, spec, tmp[:i])
		return
	}

	radix, digits := radixOf(spec.Type)
	i := len(tmp)
	if n == 0 {
		i--
		tmp[i] = '0'
	}
	for n > 0 {
		i--
		tmp[i] = digits[n%radix]
		n /= radix
	}
	if spec.RadixLead {
		switch spec.Type {
		case 'b', 'B', 'x', 'X':
			i -= 2
			tmp[i], tmp[i+1] = '0', spec.Type
		case 'o':
			i -= 2
			tmp[i], tmp[i+1] = '0', 'o'
		}
	}
	if negative {
		i--
		tmp[i] = '-'
	} else if spec.Sign == '+' || spec.Sign == ' ' {
		i--
		tmp[i] = spec.Sign
	}
	WriteAligned(w, spec, tmp[i:])
}

// FormatFloat renders f under spec. The type character selects the strconv
// format ('f', 'e'/'E', 'g'/'G'; default 'g') and Prec the precision.
func FormatFloat(w *Writer, spec Spec, f float64) {
	verb := byte('g')
	switch spec.Type {
	case 'f', 'F':
		verb = 'f'
	case 'e', 'E', 'G':
		verb = spec.Type
	}
	var tmp [40]byte
	out := strconv.AppendFloat(tmp[:0], f, verb, spec.Prec, 64)
	if f >= 0 && (spec.Sign == '+' || spec.Sign == ' ') {
		// AppendFloat only emits '-'; splice the positive sign in front.
		var signed [41]byte
		signed[0] = spec.Sign
		n := copy(signed[1:], out)
		WriteAligned(w, spec, signed[:n+1])
		return
	}
	WriteAligned(w, spec, out)
}

// formatString writes s, clipped to spec.Prec characters when set. Under the
// 'x'/'X' types the bytes are hex encoded instead. Field alignment is applied
// by the caller's scratch commit.
func formatString(w *Writer, spec Spec, s string) {
	if spec.Prec >= 0 && spec.Prec < len(s) {
		s = s[:spec.Prec]
	}
	switch spec.Type {
	case 'x', 'X':
		digits := hexLower
		if spec.Type == 'X' {
			digits = hexUpper
		}
		for i := 0; i < len(s); i++ {
			_ = w.WriteByte(digits[s[i]>>4])
			_ = w.WriteByte(digits[s[i]&0x0f])
		}
	default:
		_, _ = w.WriteString(s)
	}
}

func formatBool(w *Writer, spec Spec, v bool) {
	switch spec.Type {
	case 's':
		if v {
			_, _ = w.WriteString("true")
		} else {
			_, _ = w.WriteString("false")
		}
	case 'S':
		if v {
			_, _ = w.WriteString("TRUE")
		} else {
			_, _ = w.WriteString("FALSE")
		}
	default:
		n := uint64(0)
		if v {
			n = 1
		}
		FormatInt(w, spec, n, false)
	}
}

// formatPointer renders an address as radix-led hex, the way %p would, but
// through the normal integer path so width and fill still apply.
func formatPointer(w *Writer, spec Spec, p uintptr) {
	spec.RadixLead = true
	switch spec.Type {
	case 'P':
		spec.Type = 'X'
	case DefaultType, 'p':
		spec.Type = 'x'
	}
	FormatInt(w, spec, uint64(p), false)
}

// formatAny is the last-resort generic path for values with no dedicated
// formatter. It costs an allocation, which is acceptable off the common path.
func formatAny(w *Writer, spec Spec, v any) {
	formatString(w, spec, fmt.Sprint(v))
}
