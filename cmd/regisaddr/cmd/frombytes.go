// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"strings"

	"github.com/peterbourgon/ff/v2/ffcli"
	"github.com/regis-project/regisaddr/types/addr"
	"github.com/regis-project/regisaddr/types/flagtype"
)

var fromBytesArgs struct {
	family addr.Family
}

var fromBytesCmd = &ffcli.Command{
	Name:       "frombytes",
	ShortUsage: "frombytes [flags] <hex bytes>",
	ShortHelp:  "rebuild the canonical text of an address from its raw bytes",
	FlagSet: (func() *flag.FlagSet {
		fs := flag.NewFlagSet("frombytes", flag.ExitOnError)
		fs.Var(flagtype.FamilyValue(&fromBytesArgs.family, addr.FamilyUnspec), "family", "address family of the bytes, inferred from the length when unset")
		return fs
	})(),
	Exec: execFromBytes,
}

func execFromBytes(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return flag.ErrHelp
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	if err != nil {
		return fmt.Errorf("not a hex byte string: %w", err)
	}

	fam := fromBytesArgs.family
	if fam == addr.FamilyUnspec {
		switch len(raw) {
		case addr.V4.ByteLen():
			fam = addr.V4
		case addr.V6.ByteLen():
			fam = addr.V6
		default:
			return addr.InvalidLengthError{Len: len(raw)}
		}
	}

	ip, err := addr.AddrFromBytes(fam, raw)
	if err != nil {
		return err
	}

	fmt.Println(ip.String())
	return nil
}
