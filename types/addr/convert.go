// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import (
	"net"
	"net/netip"
)

// StdIP returns the net.IP form of ip: 4 bytes for V4, 16 for V6,
// nil for the zero Addr.
func (ip Addr) StdIP() net.IP { return net.IP(ip.Bytes()) }

// AddrFromStdIP returns the Addr form of std. A 16-byte net.IP
// holding a 4-in-6 mapped address is unwrapped to its V4 form, since
// that is how the net package stores dotted-quad literals. ok is
// false when std is not 4 or 16 bytes long.
func AddrFromStdIP(std net.IP) (ip Addr, ok bool) {
	switch len(std) {
	case 4:
		return AddrFrom4([4]byte(std)), true
	case 16:
		return AddrFrom16([16]byte(std)).Unmap(), true
	}
	return Addr{}, false
}

// NetIP returns the netip.Addr form of ip, for callers continuing
// into the standard library. The zero Addr maps to the zero
// netip.Addr.
func (ip Addr) NetIP() netip.Addr {
	switch ip.fam {
	case V4:
		return netip.AddrFrom4([4]byte(ip.oct[0:4]))
	case V6:
		return netip.AddrFrom16(ip.oct)
	}
	return netip.Addr{}
}

// AddrFromNetIP returns the Addr form of std. Zoned addresses have
// no byte encoding at this layer and report ok false.
func AddrFromNetIP(std netip.Addr) (ip Addr, ok bool) {
	switch {
	case !std.IsValid() || std.Zone() != "":
		return Addr{}, false
	case std.Is4():
		return AddrFrom4(std.As4()), true
	default:
		return AddrFrom16(std.As16()), true
	}
}

// NetAddrPort returns the netip.AddrPort form of p. The zero
// AddrPort maps to the zero netip.AddrPort.
func (p AddrPort) NetAddrPort() netip.AddrPort {
	return netip.AddrPortFrom(p.ip.NetIP(), p.port)
}

// NetPrefix returns the netip.Prefix form of p. An invalid p maps to
// the zero netip.Prefix.
func (p Prefix) NetPrefix() netip.Prefix {
	if !p.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(p.ip.NetIP(), int(p.bits))
}
