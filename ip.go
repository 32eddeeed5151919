package bwf

import (
	"net"
	"net/netip"
	"reflect"
)

// The network address formatters are the worked example of the extension
// contract: they interpret the specifier's Ext field as a private sub-grammar
// and drive their sub-fields back through [FormatInt] and raw sink writes.
//
// Ext grammar: an optional leading `=` requests fixed alignment of each
// address element with zero fill; `<c>=` uses c as the fill character. For
// endpoints the remaining characters are a flag set over {a,p,f} selecting
// address, port and family sub-parts (default: address and port).

// extFill strips the optional fill request off an extension, returning the
// fill character, whether one was requested, and the remaining flags.
func extFill(ext string) (fill byte, ok bool, rest string) {
	switch {
	case len(ext) >= 1 && ext[0] == '=':
		return '0', true, ext[1:]
	case len(ext) >= 2 && ext[1] == '=':
		return ext[0], true, ext[2:]
	}
	return ' ', false, ext
}

// formatIP4 renders the four octets as unsigned integers separated by dots.
// With the `=` extension each octet is padded to width 3.
func formatIP4(w *Writer, spec Spec, octets [4]byte) {
	local := spec
	local.Ext = ""
	if fill, ok, _ := extFill(spec.Ext); ok {
		local.Fill = fill
		local.Min = 3
		local.Align = AlignRight
	} else {
		local.Min = 0
	}
	for i, o := range octets {
		if i > 0 {
			_ = w.WriteByte('.')
		}
		FormatInt(w, local, uint64(o), false)
	}
}

// formatIP6 renders the eight two-byte groups colon separated in lowercase
// hex (uppercase under 'X'). The longest run of at least two zero groups —
// the leftmost on a tie — collapses to "::". The `=` extension disables
// compression and pads each group to width 4 instead.
func formatIP6(w *Writer, spec Spec, raw [16]byte) {
	var groups [8]uint16
	for i := range groups {
		groups[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}

	local := spec
	local.Ext = ""
	fill, alignp, _ := extFill(spec.Ext)
	zstart, zlen := 0, 0
	if alignp {
		local.Fill = fill
		local.Min = 4
		local.Align = AlignRight
	} else {
		local.Min = 0
		run, runLen := -1, 0
		for i, g := range groups {
			if g != 0 {
				run = -1
				continue
			}
			if run < 0 {
				run, runLen = i, 0
			}
			runLen++
			if runLen > zlen { // strictly longer, so the leftmost run wins ties
				zstart, zlen = run, runLen
			}
		}
		if zlen < 2 {
			zlen = 0
		}
	}
	if !local.HasNumericType() {
		local.Type = 'x'
	}

	for i := 0; i < 8; {
		if zlen > 0 && i == zstart {
			_, _ = w.WriteString("::")
			i += zlen
			continue
		}
		FormatInt(w, local, uint64(groups[i]), false)
		i++
		if i < 8 && !(zlen > 0 && i == zstart) {
			_ = w.WriteByte(':')
		}
	}
}

func familyName(addr netip.Addr) string {
	switch {
	case addr.Is4() || addr.Is4In6():
		return "ipv4"
	case addr.Is6():
		return "ipv6"
	}
	return "unspec"
}

func familyTag(addr netip.Addr) uint64 {
	switch {
	case addr.Is4() || addr.Is4In6():
		return 4
	case addr.Is6():
		return 6
	}
	return 0
}

// FormatAddr renders a bare address. Ext flags: 'a' address (default), 'f'
// family name; the family renders as a numeric tag under a numeric type.
func FormatAddr(w *Writer, spec Spec, addr netip.Addr) {
	_, _, flags := extFill(spec.Ext)
	addrP, familyP := true, false
	if flags != "" {
		addrP = false
		for i := 0; i < len(flags); i++ {
			switch flags[i] {
			case 'a', 'A':
				addrP = true
			case 'f', 'F':
				familyP = true
			}
		}
	}

	if addrP {
		switch {
		case addr.Is4() || addr.Is4In6():
			formatIP4(w, spec, addr.Unmap().As4())
		case addr.Is6():
			formatIP6(w, spec, addr.As16())
		default:
			_, _ = w.WriteString("*Not IP address [0]*")
		}
	}
	if familyP {
		if addrP {
			_ = w.WriteByte(' ')
		}
		local := spec
		local.Min = 0
		if spec.HasNumericType() {
			FormatInt(w, local, familyTag(addr), false)
		} else {
			_, _ = w.WriteString(familyName(addr))
		}
	}
}

// FormatAddrPort renders an endpoint. Ext flags: 'a' address, 'p' port, 'f'
// family (default: address and port). An IPv6 address is bracketed only when
// the port is also printed; the `=` extension zero-pads the port to width 5.
func FormatAddrPort(w *Writer, spec Spec, ap netip.AddrPort) {
	fill, fillP, flags := extFill(spec.Ext)
	addrP, portP, familyP := true, true, false
	if flags != "" {
		addrP, portP = false, false
		for i := 0; i < len(flags); i++ {
			switch flags[i] {
			case 'a', 'A':
				addrP = true
			case 'p', 'P':
				portP = true
			case 'f', 'F':
				familyP = true
			}
		}
	}
	addr := ap.Addr()

	if addrP {
		bracket := false
		switch {
		case addr.Is4() || addr.Is4In6():
			formatIP4(w, spec, addr.Unmap().As4())
		case addr.Is6():
			if portP {
				_ = w.WriteByte('[')
				bracket = true
			}
			formatIP6(w, spec, addr.As16())
		default:
			_, _ = w.WriteString("*Not IP address [0]*")
		}
		if bracket {
			_ = w.WriteByte(']')
		}
		if portP {
			_ = w.WriteByte(':')
		}
	}
	if portP {
		local := spec
		local.Ext = ""
		if fillP {
			local.Min = 5
			local.Fill = fill
			local.Align = AlignRight
		} else {
			local.Min = 0
		}
		FormatInt(w, local, uint64(ap.Port()), false)
	}
	if familyP {
		if addrP || portP {
			_ = w.WriteByte(' ')
		}
		local := spec
		local.Min = 0
		if spec.HasNumericType() {
			FormatInt(w, local, familyTag(addr), false)
		} else {
			_, _ = w.WriteString(familyName(addr))
		}
	}
}

// netFormatters binds the address types the dispatch table recognizes
// directly, ahead of their Stringer fallbacks.
var netFormatters = map[reflect.Type]formatFunc{
	reflect.TypeOf(netip.Addr{}): func(w *Writer, spec Spec, v any) {
		FormatAddr(w, spec, v.(netip.Addr))
	},
	reflect.TypeOf(netip.AddrPort{}): func(w *Writer, spec Spec, v any) {
		FormatAddrPort(w, spec, v.(netip.AddrPort))
	},
	reflect.TypeOf(net.IP(nil)): func(w *Writer, spec Spec, v any) {
		addr, ok := netip.AddrFromSlice(v.(net.IP))
		if !ok {
			_, _ = w.WriteString("*Not IP address [0]*")
			return
		}
		FormatAddr(w, spec, addr.Unmap())
	},
	reflect.TypeOf((*net.TCPAddr)(nil)): func(w *Writer, spec Spec, v any) {
		formatNetAddrPort(w, spec, v, func() netip.AddrPort { return v.(*net.TCPAddr).AddrPort() })
	},
	reflect.TypeOf((*net.UDPAddr)(nil)): func(w *Writer, spec Spec, v any) {
		formatNetAddrPort(w, spec, v, func() netip.AddrPort { return v.(*net.UDPAddr).AddrPort() })
	},
}

// formatNetAddrPort handles the pointer-bearing net endpoint types: 'p'/'P'
// render the pointer itself, nil renders visibly, anything else goes through
// [FormatAddrPort].
func formatNetAddrPort(w *Writer, spec Spec, v any, ap func() netip.AddrPort) {
	if spec.HasPointerType() {
		formatPointer(w, spec, reflect.ValueOf(v).Pointer())
		return
	}
	if reflect.ValueOf(v).IsNil() {
		formatString(w, spec, "<nil>")
		return
	}
	FormatAddrPort(w, spec, ap())
}
