// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

// Package addr implements the address value layer shared by the regis
// tools: immutable IPv4/IPv6 address, endpoint and prefix types that
// round-trip between network-order bytes and canonical text.
//
// Unlike net.IP, the Addr type is a comparable value, usable with ==
// and as a map key, and it carries its family tag explicitly, so a
// 4-byte and a 16-byte form never alias each other by accident.
package addr

import (
	"bytes"
	"fmt"

	"go4.org/mem"
)

// Addr is an immutable IPv4 or IPv6 address: a family tag plus the
// address octets in network order. The zero Addr is not a valid
// address of either family.
type Addr struct {
	fam Family

	// oct holds the address octets. A V4 address occupies oct[0:4]
	// with the rest zero; a V6 address occupies all sixteen.
	oct [16]byte
}

// AddrFrom4 returns the IPv4 address of the 4 bytes in a.
func AddrFrom4(a [4]byte) Addr {
	return Addr{fam: V4, oct: [16]byte{a[0], a[1], a[2], a[3]}}
}

// AddrFrom16 returns the IPv6 address of the 16 bytes in a. The
// result always has family V6, even when a holds a 4-in-6 mapped
// IPv4 address; use Unmap to recover the IPv4 form.
func AddrFrom16(a [16]byte) Addr {
	return Addr{fam: V6, oct: a}
}

// IPv4 returns the IPv4 address a.b.c.d.
func IPv4(a, b, c, d byte) Addr {
	return AddrFrom4([4]byte{a, b, c, d})
}

// IPv6Loopback returns the IPv6 loopback address ::1.
func IPv6Loopback() Addr { return AddrFrom16([16]byte{15: 0x01}) }

// IPv6Unspecified returns the IPv6 unspecified address ::.
func IPv6Unspecified() Addr { return Addr{fam: V6} }

// AddrFromBytes returns the address of family f encoded by the
// network-order bytes in b. The byte count must match the family, 4
// for V4 and 16 for V6, or the result is an InvalidLengthError.
func AddrFromBytes(f Family, b []byte) (Addr, error) {
	switch f {
	case V4:
		if len(b) != 4 {
			return Addr{}, InvalidLengthError{Family: f, Len: len(b)}
		}
		return AddrFrom4([4]byte(b)), nil
	case V6:
		if len(b) != 16 {
			return Addr{}, InvalidLengthError{Family: f, Len: len(b)}
		}
		return AddrFrom16([16]byte(b)), nil
	}
	return Addr{}, fmt.Errorf("unknown address family %v", f)
}

// Family returns the address family tag: V4, V6, or FamilyUnspec for
// the zero Addr.
func (ip Addr) Family() Family { return ip.fam }

// IsValid reports whether ip is an initialized address, not the zero
// value. Note that both 0.0.0.0 and :: are valid, non-zero addresses.
func (ip Addr) IsValid() bool { return ip.fam.IsValid() }

// Is4 reports whether ip is an IPv4 address. It returns false for
// 4-in-6 mapped addresses; see Unmap.
func (ip Addr) Is4() bool { return ip.fam == V4 }

// Is6 reports whether ip is an IPv6 address, including 4-in-6 mapped
// addresses.
func (ip Addr) Is6() bool { return ip.fam == V6 }

// Is4In6 reports whether ip is an IPv4 address mapped into the IPv6
// space, ::ffff:0:0/96.
func (ip Addr) Is4In6() bool {
	if ip.fam != V6 {
		return false
	}
	for _, b := range ip.oct[:10] {
		if b != 0 {
			return false
		}
	}
	return ip.oct[10] == 0xff && ip.oct[11] == 0xff
}

// Unmap returns the IPv4 address wrapped by a 4-in-6 mapped address.
// Every other address, of either family, is returned unchanged.
func (ip Addr) Unmap() Addr {
	if ip.Is4In6() {
		return AddrFrom4([4]byte(ip.oct[12:16]))
	}
	return ip
}

// Bytes returns the raw address in network order: 4 bytes for V4, 16
// for V6, nil for the zero Addr. The slice is a fresh copy; mutating
// it does not affect ip.
func (ip Addr) Bytes() []byte {
	switch ip.fam {
	case V4:
		return append([]byte(nil), ip.oct[:4]...)
	case V6:
		return append([]byte(nil), ip.oct[:]...)
	}
	return nil
}

// As4 returns the address in its 4-byte form. It panics unless ip is
// an IPv4 or 4-in-6 mapped address.
func (ip Addr) As4() [4]byte {
	if ip.fam == V4 {
		return [4]byte(ip.oct[0:4])
	}
	if ip.Is4In6() {
		return [4]byte(ip.oct[12:16])
	}
	panic("As4 called on " + ip.fam.String() + " address")
}

// As16 returns the address in its 16-byte form. V4 addresses map
// into ::ffff:0:0/96; the zero Addr returns all zeros.
func (ip Addr) As16() [16]byte {
	if ip.fam == V4 {
		var a [16]byte
		a[10], a[11] = 0xff, 0xff
		copy(a[12:], ip.oct[:4])
		return a
	}
	return ip.oct
}

// Compare returns an integer comparing two addresses. The result is
// 0 if ip == ip2, -1 if ip sorts before ip2, +1 if after. Addresses
// sort first by family, V4 before V6, then by their bytes.
func (ip Addr) Compare(ip2 Addr) int {
	if ip.fam != ip2.fam {
		if ip.fam < ip2.fam {
			return -1
		}
		return 1
	}
	return bytes.Compare(ip.oct[:], ip2.oct[:])
}

// Less reports whether ip sorts before ip2.
func (ip Addr) Less(ip2 Addr) bool { return ip.Compare(ip2) < 0 }

// MarshalText implements encoding.TextMarshaler. The encoding is the
// same as returned by String, except the zero Addr encodes as the
// empty string.
func (ip Addr) MarshalText() ([]byte, error) {
	if !ip.IsValid() {
		return []byte(""), nil
	}
	return ip.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The address is
// expected in a form accepted by ParseAddr; empty input sets the
// zero Addr. If an error occurs, ip is unchanged.
func (ip *Addr) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*ip = Addr{}
		return nil
	}
	a, err := parseAddr(mem.B(text))
	if err != nil {
		return err
	}
	*ip = a
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// the raw network-order bytes, as returned by Bytes.
func (ip Addr) MarshalBinary() ([]byte, error) { return ip.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The family
// is inferred from the byte count: 4 means V4, 16 means V6, empty
// means the zero Addr.
func (ip *Addr) UnmarshalBinary(b []byte) error {
	switch len(b) {
	case 0:
		*ip = Addr{}
		return nil
	case 4:
		*ip = AddrFrom4([4]byte(b))
		return nil
	case 16:
		*ip = AddrFrom16([16]byte(b))
		return nil
	}
	return InvalidLengthError{Len: len(b)}
}
