// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package addr_test

import (
	"encoding/json"
	"testing"

	"github.com/regis-project/regisaddr/types/addr"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		in       string
		wantAddr addr.Addr
		wantBits int
	}{
		{"192.168.0.0/16", addr.IPv4(192, 168, 0, 0), 16},
		{"10.0.0.0/8", addr.IPv4(10, 0, 0, 0), 8},
		{"0.0.0.0/0", addr.IPv4(0, 0, 0, 0), 0},
		{"192.168.1.1/32", addr.IPv4(192, 168, 1, 1), 32},
		{"2001:db8::/32", addr.MustParseAddr("2001:db8::"), 32},
		{"::/0", addr.IPv6Unspecified(), 0},
		{"::1/128", addr.IPv6Loopback(), 128},
		{"fe80::/10", addr.MustParseAddr("fe80::"), 10},
		// The base address is kept as given, not masked.
		{"192.168.1.77/24", addr.IPv4(192, 168, 1, 77), 24},
	}
	for _, tt := range tests {
		got, err := addr.ParsePrefix(tt.in)
		if err != nil {
			t.Errorf("ParsePrefix(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got.Addr() != tt.wantAddr || got.Bits() != tt.wantBits {
			t.Errorf("ParsePrefix(%q) = %v/%d, want %v/%d", tt.in, got.Addr(), got.Bits(), tt.wantAddr, tt.wantBits)
		}
	}
}

func TestParsePrefixError(t *testing.T) {
	tests := []string{
		"",
		"192.168.0.0",
		"192.168.0.0/",
		"192.168.0.0/33",
		"192.168.0.0/321",
		"::/129",
		"1.2.3.4/-1",
		"1.2.3.4/a",
		"1.2.3.4/0x10",
		"bogus/24",
		"/24",
		"256.0.0.0/8",
		"01.0.0.0/8",
	}
	for _, in := range tests {
		if got, err := addr.ParsePrefix(in); err == nil {
			t.Errorf("ParsePrefix(%q) = %v, want error", in, got)
		}
	}
}

func TestPrefixFrom(t *testing.T) {
	p, err := addr.PrefixFrom(addr.IPv4(10, 0, 0, 0), 8)
	if err != nil {
		t.Fatalf("PrefixFrom: %v", err)
	}
	if got, want := p.String(), "10.0.0.0/8"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if _, err := addr.PrefixFrom(addr.IPv4(10, 0, 0, 0), 33); err == nil {
		t.Error("PrefixFrom(V4, 33) succeeded, want error")
	}
	if _, err := addr.PrefixFrom(addr.IPv4(10, 0, 0, 0), -1); err == nil {
		t.Error("PrefixFrom(V4, -1) succeeded, want error")
	}
	if _, err := addr.PrefixFrom(addr.MustParseAddr("::1"), 129); err == nil {
		t.Error("PrefixFrom(V6, 129) succeeded, want error")
	}
	if _, err := addr.PrefixFrom(addr.Addr{}, 0); err == nil {
		t.Error("PrefixFrom(zero Addr) succeeded, want error")
	}
}

func TestPrefixContains(t *testing.T) {
	tests := []struct {
		prefix string
		ip     string
		want   bool
	}{
		{"10.0.0.0/8", "10.200.3.4", true},
		{"10.0.0.0/8", "11.0.0.1", false},
		{"192.168.1.0/24", "192.168.1.255", true},
		{"192.168.1.0/24", "192.168.2.0", false},
		{"0.0.0.0/0", "8.8.8.8", true},
		{"172.16.0.0/12", "172.31.255.255", true},
		{"172.16.0.0/12", "172.32.0.0", false},
		{"192.168.1.7/32", "192.168.1.7", true},
		{"192.168.1.7/32", "192.168.1.8", false},
		{"2001:db8::/32", "2001:db8:1234::1", true},
		{"2001:db8::/32", "2001:db9::1", false},
		{"::/0", "fe80::1", true},
		{"fe80::/10", "febf::1", true},
		{"fe80::/10", "fec0::1", false},
		// Families never mix, even for mapped addresses.
		{"0.0.0.0/0", "::1", false},
		{"::/0", "8.8.8.8", false},
		{"10.0.0.0/8", "::ffff:10.0.0.1", false},
	}
	for _, tt := range tests {
		p := addr.MustParsePrefix(tt.prefix)
		ip := addr.MustParseAddr(tt.ip)
		if got := p.Contains(ip); got != tt.want {
			t.Errorf("%s.Contains(%s) = %v, want %v", tt.prefix, tt.ip, got, tt.want)
		}
	}
}

func TestPrefixMasked(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192.168.1.77/24", "192.168.1.0/24"},
		{"192.168.1.77/32", "192.168.1.77/32"},
		{"255.255.255.255/1", "128.0.0.0/1"},
		{"1.2.3.4/0", "0.0.0.0/0"},
		{"2001:db8::1/32", "2001:db8::/32"},
		{"fe80::dead:beef/10", "fe80::/10"},
		{"::1/128", "::1/128"},
	}
	for _, tt := range tests {
		got := addr.MustParsePrefix(tt.in).Masked()
		if got.String() != tt.want {
			t.Errorf("%s.Masked() = %v, want %s", tt.in, got, tt.want)
		}
	}
}

func TestPrefixOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"10.0.0.0/8", "10.1.0.0/16", true},
		{"10.1.0.0/16", "10.0.0.0/8", true},
		{"10.0.0.0/8", "11.0.0.0/16", false},
		{"0.0.0.0/0", "192.168.0.0/16", true},
		{"192.168.0.0/24", "192.168.1.0/24", false},
		{"192.168.0.0/16", "192.168.0.0/16", true},
		{"2001:db8::/32", "2001:db8:ff::/48", true},
		{"2001:db8::/32", "2001:db9::/48", false},
		{"::/0", "2001:db8::/32", true},
		{"10.0.0.0/8", "2001:db8::/32", false},
	}
	for _, tt := range tests {
		a := addr.MustParsePrefix(tt.a)
		b := addr.MustParsePrefix(tt.b)
		if got := a.Overlaps(b); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPrefixIsSingleIP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"192.168.1.7/32", true},
		{"192.168.1.0/24", false},
		{"::1/128", true},
		{"2001:db8::/32", false},
	}
	for _, tt := range tests {
		if got := addr.MustParsePrefix(tt.in).IsSingleIP(); got != tt.want {
			t.Errorf("%s.IsSingleIP() = %v, want %v", tt.in, got, tt.want)
		}
	}
	if (addr.Prefix{}).IsSingleIP() {
		t.Error("zero Prefix reports IsSingleIP")
	}
}

func TestPrefixString(t *testing.T) {
	if got, want := (addr.Prefix{}).String(), "invalid Prefix"; got != want {
		t.Errorf("zero String() = %q, want %q", got, want)
	}
	in := "2001:db8::/32"
	if got := addr.MustParsePrefix(in).String(); got != in {
		t.Errorf("String() = %q, want %q", got, in)
	}
}

func TestPrefixJSON(t *testing.T) {
	type route struct {
		Dst addr.Prefix `json:"dst"`
	}
	in := route{Dst: addr.MustParsePrefix("192.168.0.0/16")}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(b), `{"dst":"192.168.0.0/16"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var out route
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Dst != in.Dst {
		t.Errorf("round-tripped prefix = %v, want %v", out.Dst, in.Dst)
	}
}
