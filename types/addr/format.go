// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

const digits = "0123456789abcdef"

// appendDecimal appends the decimal form of x to b.
func appendDecimal(b []byte, x uint8) []byte {
	if x >= 100 {
		b = append(b, digits[x/100])
	}
	if x >= 10 {
		b = append(b, digits[x/10%10])
	}
	return append(b, digits[x%10])
}

// appendHex appends the unpadded lowercase hex form of x to b.
func appendHex(b []byte, x uint16) []byte {
	if x >= 0x1000 {
		b = append(b, digits[x>>12])
	}
	if x >= 0x100 {
		b = append(b, digits[x>>8&0xf])
	}
	if x >= 0x10 {
		b = append(b, digits[x>>4&0xf])
	}
	return append(b, digits[x&0xf])
}

// appendHexPad appends the 4-digit padded hex form of x to b.
func appendHexPad(b []byte, x uint16) []byte {
	return append(b, digits[x>>12], digits[x>>8&0xf], digits[x>>4&0xf], digits[x&0xf])
}

// hextet returns the i'th 16-bit group of a V6 address, i in 0..7.
func (ip Addr) hextet(i int) uint16 {
	return uint16(ip.oct[i*2])<<8 | uint16(ip.oct[i*2+1])
}

// String returns the canonical text of the address: dotted decimal
// for V4, RFC 5952 lowercase colon-hex for V6 with the longest run
// of two or more zero hextets collapsed to "::" (the leftmost run
// when tied), and "invalid IP" for the zero Addr. 4-in-6 addresses
// render their embedded dotted quad, e.g. "::ffff:192.0.2.1".
//
// The output of String is a fixed point: parsing it and formatting
// the result gives the same text back.
func (ip Addr) String() string {
	switch ip.fam {
	case V4:
		return string(ip.appendTo4(make([]byte, 0, len("255.255.255.255"))))
	case V6:
		return string(ip.appendTo6(make([]byte, 0, len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"))))
	}
	return "invalid IP"
}

// AppendTo appends the text encoding of ip, as generated by
// MarshalText, to b and returns the extended buffer.
func (ip Addr) AppendTo(b []byte) []byte {
	switch ip.fam {
	case V4:
		return ip.appendTo4(b)
	case V6:
		return ip.appendTo6(b)
	}
	return b
}

func (ip Addr) appendTo4(ret []byte) []byte {
	ret = appendDecimal(ret, ip.oct[0])
	ret = append(ret, '.')
	ret = appendDecimal(ret, ip.oct[1])
	ret = append(ret, '.')
	ret = appendDecimal(ret, ip.oct[2])
	ret = append(ret, '.')
	return appendDecimal(ret, ip.oct[3])
}

// appendTo6 follows RFC 5952 section 4: lowercase, no unnecessary
// zeros, the longest zero-hextet run elided with "::", never a run
// of one. Section 5 prefers the mixed form for mapped addresses.
func (ip Addr) appendTo6(ret []byte) []byte {
	if ip.Is4In6() {
		ret = append(ret, "::ffff:"...)
		ret = appendDecimal(ret, ip.oct[12])
		ret = append(ret, '.')
		ret = appendDecimal(ret, ip.oct[13])
		ret = append(ret, '.')
		ret = appendDecimal(ret, ip.oct[14])
		ret = append(ret, '.')
		return appendDecimal(ret, ip.oct[15])
	}

	zeroStart, zeroEnd := -1, -1
	for i := 0; i < 8; i++ {
		j := i
		for j < 8 && ip.hextet(j) == 0 {
			j++
		}
		if l := j - i; l >= 2 && l > zeroEnd-zeroStart {
			zeroStart, zeroEnd = i, j
		}
	}

	for i := 0; i < 8; i++ {
		if i == zeroStart {
			ret = append(ret, ':', ':')
			i = zeroEnd
			if i >= 8 {
				break
			}
		} else if i > 0 {
			ret = append(ret, ':')
		}
		ret = appendHex(ret, ip.hextet(i))
	}
	return ret
}

// StringExpanded is like String but without any elision or 4-in-6
// shorthand: every V6 hextet is written, fully padded. V4 addresses
// format as by String.
func (ip Addr) StringExpanded() string {
	if ip.fam != V6 {
		return ip.String()
	}
	ret := make([]byte, 0, len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"))
	for i := 0; i < 8; i++ {
		if i > 0 {
			ret = append(ret, ':')
		}
		ret = appendHexPad(ret, ip.hextet(i))
	}
	return string(ret)
}
