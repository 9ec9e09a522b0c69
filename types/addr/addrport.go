// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import (
	"strconv"

	"go4.org/mem"
)

// AddrPort is an address and a port: the textual endpoint forms
// "192.0.2.1:4242" and "[2001:db8::1]:4242".
type AddrPort struct {
	ip   Addr
	port uint16
}

// AddrPortFrom returns an AddrPort with address ip and port port. It
// does not allocate.
func AddrPortFrom(ip Addr, port uint16) AddrPort { return AddrPort{ip: ip, port: port} }

// Addr returns p's address part.
func (p AddrPort) Addr() Addr { return p.ip }

// Port returns p's port part.
func (p AddrPort) Port() uint16 { return p.port }

// IsValid reports whether p's address part is valid. All ports are
// valid, including zero.
func (p AddrPort) IsValid() bool { return p.ip.IsValid() }

// Unmap returns p with a 4-in-6 mapped address part unwrapped to its
// IPv4 form; any other p is returned unchanged.
func (p AddrPort) Unmap() AddrPort { return AddrPort{ip: p.ip.Unmap(), port: p.port} }

// ParseAddrPort parses s as an AddrPort: "1.2.3.4:80" or "[::1]:80".
// Square brackets are required around V6 addresses and forbidden
// around V4 ones; the port is decimal digits only.
func ParseAddrPort(s string) (AddrPort, error) {
	return parseAddrPort(mem.S(s))
}

// MustParseAddrPort calls ParseAddrPort(s) and panics on error. It
// is intended for use with hard-coded strings.
func MustParseAddrPort(s string) AddrPort {
	p, err := ParseAddrPort(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAddrPortDefault is like ParseAddrPort but also accepts a bare
// address, optionally bracketed, filling in def as the port. This is
// how the tools accept an operator typing just a host address and
// still reach a well-known regis service port.
//
// A bare colon-hex address is taken whole: "::1:80" is the address
// 0:0:0:0:0:0:1:80, not ::1 with port 80. Bracket the address to
// attach an explicit port.
func ParseAddrPortDefault(s string, def uint16) (AddrPort, error) {
	if p, err := ParseAddrPort(s); err == nil {
		return p, nil
	}
	in := mem.S(s)
	if in.Len() >= 2 && in.At(0) == '[' && in.At(in.Len()-1) == ']' {
		in = in.SliceFrom(1)
		in = in.SliceTo(in.Len() - 1)
	}
	ip, err := parseAddr(in)
	if err != nil {
		return AddrPort{}, err
	}
	return AddrPortFrom(ip, def), nil
}

func parseAddrPort(in mem.RO) (AddrPort, error) {
	ipStr, portStr, v6, err := splitAddrPort(in)
	if err != nil {
		return AddrPort{}, err
	}
	port, err := parsePort(in, portStr)
	if err != nil {
		return AddrPort{}, err
	}
	ip, err := parseAddr(ipStr)
	if err != nil {
		return AddrPort{}, err
	}
	if v6 && ip.Is4() {
		return AddrPort{}, ParseError{In: in.StringCopy(), Msg: "square brackets can only be used with IPv6 addresses"}
	}
	if !v6 && ip.Is6() {
		return AddrPort{}, ParseError{In: in.StringCopy(), Msg: "IPv6 addresses must be surrounded by square brackets"}
	}
	return AddrPort{ip: ip, port: port}, nil
}

// splitAddrPort splits in into an address part and a port part
// around the last colon, unwrapping a bracketed "[...]" address. The
// parts are not themselves validated here.
func splitAddrPort(in mem.RO) (ip, port mem.RO, v6 bool, err error) {
	i := -1
	for j := in.Len() - 1; j >= 0; j-- {
		if in.At(j) == ':' {
			i = j
			break
		}
	}
	if i == -1 {
		return ip, port, false, ParseError{In: in.StringCopy(), Msg: "not an ip:port"}
	}
	ip, port = in.SliceTo(i), in.SliceFrom(i+1)
	if ip.Len() == 0 {
		return ip, port, false, ParseError{In: in.StringCopy(), Msg: "no IP"}
	}
	if port.Len() == 0 {
		return ip, port, false, ParseError{In: in.StringCopy(), Msg: "no port"}
	}
	if ip.At(0) == '[' {
		if ip.Len() < 2 || ip.At(ip.Len()-1) != ']' {
			return ip, port, false, ParseError{In: in.StringCopy(), Msg: "missing ]"}
		}
		ip = ip.SliceFrom(1)
		ip = ip.SliceTo(ip.Len() - 1)
		v6 = true
	}
	return ip, port, v6, nil
}

// parsePort parses the decimal port part of an endpoint. in is the
// whole endpoint text, for error reporting.
func parsePort(in, port mem.RO) (uint16, error) {
	if port.Len() == 0 || port.Len() > 5 {
		return 0, ParseError{In: in.StringCopy(), Msg: "invalid port", At: port.StringCopy()}
	}
	n := uint32(0)
	for i := 0; i < port.Len(); i++ {
		c := port.At(i)
		if c < '0' || c > '9' {
			return 0, ParseError{In: in.StringCopy(), Msg: "invalid port", At: port.StringCopy()}
		}
		n = n*10 + uint32(c-'0')
	}
	if n > 65535 {
		return 0, ParseError{In: in.StringCopy(), Msg: "port out of range", At: port.StringCopy()}
	}
	return uint16(n), nil
}

// String returns the endpoint in the form accepted by ParseAddrPort,
// bracketing V6 addresses, or "invalid AddrPort" for the zero value.
func (p AddrPort) String() string {
	switch p.ip.fam {
	case V4:
		return string(p.AppendTo(make([]byte, 0, len("255.255.255.255:65535"))))
	case V6:
		return string(p.AppendTo(make([]byte, 0, len("[ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff]:65535"))))
	}
	return "invalid AddrPort"
}

// AppendTo appends the text encoding of p, as generated by
// MarshalText, to b and returns the extended buffer.
func (p AddrPort) AppendTo(b []byte) []byte {
	switch p.ip.fam {
	case V4:
		b = p.ip.appendTo4(b)
	case V6:
		b = append(b, '[')
		b = p.ip.appendTo6(b)
		b = append(b, ']')
	default:
		return b
	}
	b = append(b, ':')
	return strconv.AppendUint(b, uint64(p.port), 10)
}

// MarshalText implements encoding.TextMarshaler. The encoding is the
// same as returned by String, except the zero AddrPort encodes as
// the empty string.
func (p AddrPort) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return []byte(""), nil
	}
	return p.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The endpoint is
// expected in a form accepted by ParseAddrPort; empty input sets the
// zero AddrPort. If an error occurs, p is unchanged.
func (p *AddrPort) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = AddrPort{}
		return nil
	}
	ap, err := parseAddrPort(mem.B(text))
	if err != nil {
		return err
	}
	*p = ap
	return nil
}
