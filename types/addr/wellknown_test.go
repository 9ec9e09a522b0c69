// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/regis-project/regisaddr/types/addr"
)

func TestClassification(t *testing.T) {
	type class struct {
		Loopback, Multicast, LinkLocal, Private, Unspecified bool
	}
	tests := []struct {
		in   string
		want class
	}{
		{"127.0.0.1", class{Loopback: true}},
		{"127.255.255.255", class{Loopback: true}},
		{"128.0.0.1", class{}},
		{"::1", class{Loopback: true}},
		{"224.0.0.251", class{Multicast: true}},
		{"239.255.255.255", class{Multicast: true}},
		{"240.0.0.1", class{}},
		{"ff02::fb", class{Multicast: true}},
		{"169.254.13.13", class{LinkLocal: true}},
		{"fe80::1", class{LinkLocal: true}},
		{"febf::1", class{LinkLocal: true}},
		{"fec0::1", class{}},
		{"10.1.2.3", class{Private: true}},
		{"172.16.0.1", class{Private: true}},
		{"172.32.0.1", class{}},
		{"192.168.99.1", class{Private: true}},
		{"fd00::1", class{Private: true}},
		{"0.0.0.0", class{Unspecified: true}},
		{"::", class{Unspecified: true}},
		{"8.8.8.8", class{}},
		{"2001:db8::1", class{}},
		// Mapped addresses stay V6 and match none of the V4 ranges.
		{"::ffff:127.0.0.1", class{}},
		{"::ffff:10.0.0.1", class{}},
	}
	for _, tt := range tests {
		ip := addr.MustParseAddr(tt.in)
		got := class{
			Loopback:    ip.IsLoopback(),
			Multicast:   ip.IsMulticast(),
			LinkLocal:   ip.IsLinkLocalUnicast(),
			Private:     ip.IsPrivate(),
			Unspecified: ip.IsUnspecified(),
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("classification of %s mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestClassificationZeroAddr(t *testing.T) {
	var ip addr.Addr
	if ip.IsLoopback() || ip.IsMulticast() || ip.IsLinkLocalUnicast() || ip.IsPrivate() || ip.IsUnspecified() {
		t.Error("the zero Addr matched a well-known range")
	}
}

func TestClassificationAfterUnmap(t *testing.T) {
	ip := addr.MustParseAddr("::ffff:127.0.0.1").Unmap()
	if !ip.IsLoopback() {
		t.Errorf("%v.IsLoopback() = false after Unmap, want true", ip)
	}
}
