// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import (
	"go4.org/mem"
)

// ParseAddr parses s as an IP address: dotted decimal ("192.0.2.1")
// or colon-hex ("2001:db8::68"), with an embedded dotted tail
// ("::ffff:192.0.2.1") accepted per RFC 4291. Scoped-zone suffixes
// ("%eth0") are rejected.
func ParseAddr(s string) (Addr, error) {
	return parseAddr(mem.S(s))
}

// MustParseAddr calls ParseAddr(s) and panics on error. It is
// intended for use with hard-coded strings.
func MustParseAddr(s string) Addr {
	ip, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return ip
}

// parseAddr dispatches on the first separator byte, so "1.2.3.4"
// never reaches the colon-hex scanner and vice versa.
func parseAddr(in mem.RO) (Addr, error) {
	for i := 0; i < in.Len(); i++ {
		switch in.At(i) {
		case '.':
			return parseV4(in)
		case ':':
			return parseV6(in)
		case '%':
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "missing IPv6 address"}
		}
	}
	return Addr{}, ParseError{In: in.StringCopy(), Msg: "unable to parse IP"}
}

// parseV4 parses in as a dotted-quad IPv4 address. Decimal octets
// only, 0 to 255. Octets with leading zeros could be read as octal
// by other software and are rejected outright.
func parseV4(in mem.RO) (Addr, error) {
	var fields [4]byte
	pos := 0    // index of the field being built
	val := 0    // value of the field being built
	digits := 0 // digits consumed for the field so far
	for i := 0; i < in.Len(); i++ {
		c := in.At(i)
		switch {
		case c >= '0' && c <= '9':
			if digits > 0 && val == 0 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 field has octet with leading zero"}
			}
			val = val*10 + int(c-'0')
			digits++
			if val > 255 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 field has value >255"}
			}
		case c == '.':
			// .1.2.3, 1..2.3 and 1.2.3. all have an empty field.
			if digits == 0 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 field must have at least one digit"}
			}
			if pos == 3 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 address too long"}
			}
			fields[pos] = byte(val)
			pos++
			val, digits = 0, 0
		default:
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "unexpected character in IPv4 address", At: in.SliceFrom(i).StringCopy()}
		}
	}
	if digits == 0 {
		return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 field must have at least one digit"}
	}
	if pos < 3 {
		return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv4 address too short"}
	}
	fields[3] = byte(val)
	return AddrFrom4(fields), nil
}

// parseV6 parses in as a colon-hex IPv6 address: up to eight 16-bit
// hextets with at most one "::" elision, the last two hextets
// optionally written as an embedded dotted quad.
func parseV6(in mem.RO) (Addr, error) {
	s := in // unconsumed tail of the input
	var oct [16]byte
	ellipsis := -1 // byte offset of the :: elision in oct

	// Might have a leading ellipsis.
	if s.Len() >= 2 && s.At(0) == ':' && s.At(1) == ':' {
		ellipsis = 0
		s = s.SliceFrom(2)
		if s.Len() == 0 {
			return IPv6Unspecified(), nil
		}
	}

	i := 0
	for i < 16 {
		// Scan a 1 to 4 digit hextet.
		acc := uint32(0)
		off := 0
		for ; off < s.Len(); off++ {
			d, ok := fromHexChar(s.At(off))
			if !ok {
				break
			}
			acc = acc<<4 | uint32(d)
			if acc > 0xffff {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "IPv6 field has value >=2^16", At: s.StringCopy()}
			}
		}
		if off == 0 {
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "each colon-separated field must have at least one digit", At: s.StringCopy()}
		}
		// The overflow check alone misses over-long runs of zeros.
		if off > 4 {
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "each group must have 4 or fewer digits", At: s.StringCopy()}
		}

		// A dot after the digits means an embedded IPv4 tail, which
		// stands for the final four address bytes.
		if off < s.Len() && s.At(off) == '.' {
			if ellipsis < 0 && i != 12 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "embedded IPv4 address must replace the final two fields", At: s.StringCopy()}
			}
			if i+4 > 16 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "too many fields before an embedded IPv4 address", At: s.StringCopy()}
			}
			ip4, err := parseV4(s)
			if err != nil {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: err.Error(), At: s.StringCopy()}
			}
			copy(oct[i:i+4], ip4.oct[:4])
			s = mem.S("")
			i += 4
			break
		}

		// Save the hextet.
		oct[i] = byte(acc >> 8)
		oct[i+1] = byte(acc)
		i += 2

		s = s.SliceFrom(off)
		if s.Len() == 0 {
			break
		}

		// Otherwise the hextet must be followed by a colon.
		if s.At(0) != ':' {
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "unexpected character, want colon", At: s.StringCopy()}
		}
		if s.Len() == 1 {
			return Addr{}, ParseError{In: in.StringCopy(), Msg: "colon must be followed by more characters", At: s.StringCopy()}
		}
		s = s.SliceFrom(1)

		// A second colon here is the one allowed elision.
		if s.At(0) == ':' {
			if ellipsis >= 0 {
				return Addr{}, ParseError{In: in.StringCopy(), Msg: "multiple :: in address", At: s.StringCopy()}
			}
			ellipsis = i
			s = s.SliceFrom(1)
			if s.Len() == 0 { // :: may end the address
				break
			}
		}
	}

	if s.Len() != 0 {
		return Addr{}, ParseError{In: in.StringCopy(), Msg: "trailing garbage after address", At: s.StringCopy()}
	}

	switch {
	case i < 16 && ellipsis < 0:
		return Addr{}, ParseError{In: in.StringCopy(), Msg: "address string too short"}
	case i < 16:
		// Slide the bytes after the elision to the end and zero the
		// gap it stood for.
		n := 16 - i
		for j := i - 1; j >= ellipsis; j-- {
			oct[j+n] = oct[j]
		}
		for j := ellipsis + n - 1; j >= ellipsis; j-- {
			oct[j] = 0
		}
	case ellipsis >= 0:
		// The elision must stand for at least one zero field.
		return Addr{}, ParseError{In: in.StringCopy(), Msg: "the :: must expand to at least one field of zeros"}
	}
	return AddrFrom16(oct), nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
