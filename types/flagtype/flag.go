// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package flagtype

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/regis-project/regisaddr/types/addr"
)

// Well-known ports of the regis service family: hosts talk to regisd
// on the client port, discovery runs on the broadcast port.
const DefaultClientPort = 1026
const DefaultBroadcastPort = 1027

type portValue struct{ n *uint16 }

func PortValue(dst *uint16, defaultPort uint16) flag.Value {
	*dst = defaultPort
	return portValue{dst}
}

func (p portValue) String() string {
	if p.n == nil {
		return ""
	}
	return fmt.Sprint(*p.n)
}

func (p portValue) Set(v string) error {
	if v == "" {
		return errors.New("can't be the empty string")
	}
	if strings.Contains(v, ":") {
		return errors.New("expecting just a port number, without a colon")
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid number")
	}
	if n > math.MaxUint16 {
		return errors.New("out of range for port number")
	}
	*p.n = uint16(n)
	return nil
}

type familyValue struct{ f *addr.Family }

// FamilyValue returns a flag.Value that parses an address family
// name ("ipv4", "v6", "4", ...) into dst.
func FamilyValue(dst *addr.Family, defaultFamily addr.Family) flag.Value {
	*dst = defaultFamily
	return familyValue{dst}
}

func (v familyValue) String() string {
	if v.f == nil || !v.f.IsValid() {
		return ""
	}
	return v.f.String()
}

func (v familyValue) Set(s string) error {
	if s == "" {
		return errors.New("can't be the empty string")
	}
	var f addr.Family
	if err := f.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	if !f.IsValid() {
		return errors.New("expecting ipv4 or ipv6")
	}
	*v.f = f
	return nil
}
