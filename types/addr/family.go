// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import "fmt"

// Family is the address family discriminant carried by every valid
// Addr. The zero Family is FamilyUnspec, which no valid Addr has.
type Family uint8

const (
	FamilyUnspec Family = 0

	// V4 is the IPv4 address family: four octets in network order.
	V4 Family = 4

	// V6 is the IPv6 address family: sixteen octets in network order.
	V6 Family = 6
)

// IsValid reports whether f is V4 or V6.
func (f Family) IsValid() bool { return f == V4 || f == V6 }

// ByteLen returns the number of address bytes of the family: 4 for
// V4, 16 for V6, 0 for FamilyUnspec.
func (f Family) ByteLen() int {
	switch f {
	case V4:
		return 4
	case V6:
		return 16
	}
	return 0
}

// BitLen returns the number of address bits of the family: 32 for V4,
// 128 for V6, 0 for FamilyUnspec.
func (f Family) BitLen() int { return 8 * f.ByteLen() }

func (f Family) String() string {
	switch f {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return fmt.Sprintf("Family-%d", uint8(f))
	}
}

// acceptedFamilyNames is the set of spellings UnmarshalText accepts,
// keyed by their lower-case form.
var acceptedFamilyNames = map[string]Family{
	"4":    V4,
	"v4":   V4,
	"ipv4": V4,
	"6":    V6,
	"v6":   V6,
	"ipv6": V6,
}

// familyByName looks up name in acceptedFamilyNames, lowering ASCII
// case without allocating.
func familyByName(name string) (Family, bool) {
	var a [8]byte
	if len(name) > len(a) {
		return FamilyUnspec, false
	}
	b := a[:0]
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	f, ok := acceptedFamilyNames[string(b)]
	return f, ok
}

// MarshalText implements encoding.TextMarshaler. FamilyUnspec encodes
// as the empty string.
func (f Family) MarshalText() ([]byte, error) {
	switch f {
	case FamilyUnspec:
		return []byte(""), nil
	case V4:
		return []byte("ipv4"), nil
	case V6:
		return []byte("ipv6"), nil
	}
	return nil, fmt.Errorf("unknown address family %d", uint8(f))
}

// UnmarshalText implements encoding.TextUnmarshaler. If the input is
// empty, f is set to FamilyUnspec. If an error occurs, f is
// unchanged.
func (f *Family) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = FamilyUnspec
		return nil
	}
	if fam, ok := familyByName(string(b)); ok {
		*f = fam
		return nil
	}
	return fmt.Errorf("family name %q not known; use ipv4 or ipv6", b)
}
