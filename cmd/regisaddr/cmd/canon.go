// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v2/ffcli"
	"github.com/regis-project/regisaddr/types/addr"
)

var canonCmd = &ffcli.Command{
	Name:       "canon",
	ShortUsage: "canon <address|endpoint|prefix>",
	ShortHelp:  "print the canonical text form",
	Exec:       execCanon,
}

func execCanon(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return flag.ErrHelp
	}

	out, err := canonical(args[0])
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

// canonical rewrites s into its preferred spelling, trying the
// prefix, endpoint and plain address grammars in that order.
func canonical(s string) (string, error) {
	if p, err := addr.ParsePrefix(s); err == nil {
		return p.String(), nil
	}
	if ap, err := addr.ParseAddrPort(s); err == nil {
		return ap.String(), nil
	}
	ip, err := addr.ParseAddr(s)
	if err != nil {
		return "", err
	}
	return ip.String(), nil
}
