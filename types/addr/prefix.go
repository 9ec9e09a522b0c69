// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import (
	"fmt"

	"go4.org/mem"
)

// Prefix is an address prefix (CIDR) describing a network: the first
// Bits() of Addr(). The remaining bits match any address.
type Prefix struct {
	ip Addr

	// bits is the prefix length, 0..32 for V4 and 0..128 for V6.
	// Constructors enforce the range.
	bits uint8
}

// PrefixFrom returns the Prefix of ip with the given length. The
// length must be within range for ip's family.
func PrefixFrom(ip Addr, bits int) (Prefix, error) {
	if !ip.IsValid() {
		return Prefix{}, fmt.Errorf("prefix of zero Addr")
	}
	if bits < 0 || bits > ip.fam.BitLen() {
		return Prefix{}, fmt.Errorf("prefix length %d out of range for %v", bits, ip.fam)
	}
	return Prefix{ip: ip, bits: uint8(bits)}, nil
}

// Addr returns p's address part.
func (p Prefix) Addr() Addr { return p.ip }

// Bits returns p's prefix length.
func (p Prefix) Bits() int { return int(p.bits) }

// IsValid reports whether p is an initialized, in-range prefix.
func (p Prefix) IsValid() bool { return p.ip.IsValid() && int(p.bits) <= p.ip.fam.BitLen() }

// IsSingleIP reports whether p contains exactly one address.
func (p Prefix) IsSingleIP() bool { return p.IsValid() && int(p.bits) == p.ip.fam.BitLen() }

// ParsePrefix parses s as an address prefix in the CIDR notation of
// RFC 4632 and RFC 4291: "192.0.2.0/24" or "2001:db8::/32". Address
// bits beyond the prefix length are kept, not zeroed; use Masked to
// canonicalize.
func ParsePrefix(s string) (Prefix, error) {
	return parsePrefix(mem.S(s))
}

// MustParsePrefix calls ParsePrefix(s) and panics on error. It is
// intended for use with hard-coded strings.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePrefix(in mem.RO) (Prefix, error) {
	slash := -1
	for i := in.Len() - 1; i >= 0; i-- {
		if in.At(i) == '/' {
			slash = i
			break
		}
	}
	if slash < 0 {
		return Prefix{}, ParseError{In: in.StringCopy(), Msg: "no '/'"}
	}
	ip, err := parseAddr(in.SliceTo(slash))
	if err != nil {
		return Prefix{}, ParseError{In: in.StringCopy(), Msg: err.Error()}
	}
	bitsStr := in.SliceFrom(slash + 1)
	if bitsStr.Len() == 0 || bitsStr.Len() > 3 {
		return Prefix{}, ParseError{In: in.StringCopy(), Msg: "bad prefix length", At: bitsStr.StringCopy()}
	}
	bits := 0
	for i := 0; i < bitsStr.Len(); i++ {
		c := bitsStr.At(i)
		if c < '0' || c > '9' {
			return Prefix{}, ParseError{In: in.StringCopy(), Msg: "bad prefix length", At: bitsStr.StringCopy()}
		}
		bits = bits*10 + int(c-'0')
	}
	if bits > ip.fam.BitLen() {
		return Prefix{}, ParseError{In: in.StringCopy(), Msg: fmt.Sprintf("prefix length %d out of range for %v", bits, ip.fam)}
	}
	return Prefix{ip: ip, bits: uint8(bits)}, nil
}

// Contains reports whether the network p includes ip. An address of
// one family never matches a prefix of the other, so a 4-in-6 mapped
// address does not match a V4 prefix; Unmap it first if that is what
// is meant.
func (p Prefix) Contains(ip Addr) bool {
	if !p.IsValid() || p.ip.fam != ip.fam {
		return false
	}
	bits := int(p.bits)
	for i := 0; i < ip.fam.ByteLen() && bits > 0; i++ {
		if bits >= 8 {
			if p.ip.oct[i] != ip.oct[i] {
				return false
			}
			bits -= 8
			continue
		}
		mask := byte(0xff) << (8 - bits)
		return p.ip.oct[i]&mask == ip.oct[i]&mask
	}
	return true
}

// Masked returns p in its canonical form, with the address bits
// beyond the prefix length zeroed. An invalid p returns the zero
// Prefix.
func (p Prefix) Masked() Prefix {
	if !p.IsValid() {
		return Prefix{}
	}
	m := p.ip
	bits := int(p.bits)
	for i := 0; i < m.fam.ByteLen(); i++ {
		switch {
		case bits >= 8:
			bits -= 8
		case bits > 0:
			m.oct[i] &= byte(0xff) << (8 - bits)
			bits = 0
		default:
			m.oct[i] = 0
		}
	}
	return Prefix{ip: m, bits: p.bits}
}

// Overlaps reports whether p and o share any addresses. Prefixes of
// different families never overlap; a zero-length prefix overlaps
// everything in its family.
func (p Prefix) Overlaps(o Prefix) bool {
	if !p.IsValid() || !o.IsValid() || p.ip.fam != o.ip.fam {
		return false
	}
	if p.bits > o.bits {
		p, o = o, p
	}
	// p is now the wider network; they overlap iff o's base is in p.
	return p.Contains(o.Masked().ip)
}

// String returns the CIDR notation of p, "addr/bits", or
// "invalid Prefix" for the zero value.
func (p Prefix) String() string {
	if !p.IsValid() {
		return "invalid Prefix"
	}
	return string(p.AppendTo(make([]byte, 0, len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff/128"))))
}

// AppendTo appends the text encoding of p, as generated by
// MarshalText, to b and returns the extended buffer.
func (p Prefix) AppendTo(b []byte) []byte {
	if !p.IsValid() {
		return b
	}
	b = p.ip.AppendTo(b)
	b = append(b, '/')
	return appendDecimal(b, p.bits)
}

// MarshalText implements encoding.TextMarshaler. The encoding is the
// same as returned by String, except the zero Prefix encodes as the
// empty string.
func (p Prefix) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return []byte(""), nil
	}
	return p.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The prefix is
// expected in a form accepted by ParsePrefix; empty input sets the
// zero Prefix. If an error occurs, p is unchanged.
func (p *Prefix) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Prefix{}
		return nil
	}
	pfx, err := parsePrefix(mem.B(text))
	if err != nil {
		return err
	}
	*p = pfx
	return nil
}
