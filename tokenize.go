package bwf

import "strings"

// nextToken pulls the next literal and/or specifier body off format.
//
// The returned literal is verbatim template text (an escaped "{{" or "}}"
// contributes its single brace to the literal). hasSpec distinguishes "no
// specifier found" from an empty-but-present "{}" specifier. An opening brace
// with no matching close is not an error: the rest of the input is returned
// as literal text, because misformatted diagnostic strings must still print
// something.
func nextToken(format string) (literal, body, rest string, hasSpec bool) {
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '{' && c != '}' {
			continue
		}
		// Escaped brace: literal text up to and including the first brace.
		if i+1 < len(format) && format[i+1] == c {
			return format[:i+1], "", format[i+2:], false
		}
		if c == '{' {
			j := strings.IndexByte(format[i:], '}')
			if j < 0 {
				return format, "", "", false // unbalanced, literal to the end
			}
			return format[:i], format[i+1 : i+j], format[i+j+1:], true
		}
		// A lone '}' is plain text.
	}
	return format, "", "", false
}
