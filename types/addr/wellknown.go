// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr

import "sync"

// Well-known special-purpose ranges, from the IANA registries.
// Parsed on first use.
var (
	loopback4    oncePrefix // 127.0.0.0/8, RFC 1122
	loopback6    oncePrefix // ::1/128, RFC 4291
	linkLocal4   oncePrefix // 169.254.0.0/16, RFC 3927
	linkLocal6   oncePrefix // fe80::/10, RFC 4291
	multicast4   oncePrefix // 224.0.0.0/4, RFC 1112
	multicast6   oncePrefix // ff00::/8, RFC 4291
	private4a    oncePrefix // 10.0.0.0/8, RFC 1918
	private4b    oncePrefix // 172.16.0.0/12, RFC 1918
	private4c    oncePrefix // 192.168.0.0/16, RFC 1918
	uniqueLocal6 oncePrefix // fc00::/7, RFC 4193
)

type oncePrefix struct {
	sync.Once
	v Prefix
}

func wellKnown(o *oncePrefix, prefix string) Prefix {
	o.Do(func() { checkPrefix(&o.v, prefix) })
	return o.v
}

func checkPrefix(v *Prefix, prefix string) {
	var err error
	*v, err = ParsePrefix(prefix)
	if err != nil {
		panic(err)
	}
}

// IsLoopback reports whether ip is a loopback address: 127.0.0.0/8
// or ::1. A 4-in-6 mapped loopback reports false; Unmap first.
func (ip Addr) IsLoopback() bool {
	switch ip.fam {
	case V4:
		return wellKnown(&loopback4, "127.0.0.0/8").Contains(ip)
	case V6:
		return wellKnown(&loopback6, "::1/128").Contains(ip)
	}
	return false
}

// IsMulticast reports whether ip is a multicast group address,
// 224.0.0.0/4 or ff00::/8.
func (ip Addr) IsMulticast() bool {
	switch ip.fam {
	case V4:
		return wellKnown(&multicast4, "224.0.0.0/4").Contains(ip)
	case V6:
		return wellKnown(&multicast6, "ff00::/8").Contains(ip)
	}
	return false
}

// IsLinkLocalUnicast reports whether ip is a link-local unicast
// address, 169.254.0.0/16 or fe80::/10.
func (ip Addr) IsLinkLocalUnicast() bool {
	switch ip.fam {
	case V4:
		return wellKnown(&linkLocal4, "169.254.0.0/16").Contains(ip)
	case V6:
		return wellKnown(&linkLocal6, "fe80::/10").Contains(ip)
	}
	return false
}

// IsPrivate reports whether ip is a private address: the RFC 1918 V4
// blocks or the RFC 4193 unique local V6 block.
func (ip Addr) IsPrivate() bool {
	switch ip.fam {
	case V4:
		return wellKnown(&private4a, "10.0.0.0/8").Contains(ip) ||
			wellKnown(&private4b, "172.16.0.0/12").Contains(ip) ||
			wellKnown(&private4c, "192.168.0.0/16").Contains(ip)
	case V6:
		return wellKnown(&uniqueLocal6, "fc00::/7").Contains(ip)
	}
	return false
}

// IsUnspecified reports whether ip is the unspecified address of its
// family, 0.0.0.0 or ::. The zero Addr reports false.
func (ip Addr) IsUnspecified() bool {
	return ip == IPv4(0, 0, 0, 0) || ip == IPv6Unspecified()
}
