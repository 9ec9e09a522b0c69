// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v2/ffcli"
	"github.com/regis-project/regisaddr/types/addr"
)

var bytesCmd = &ffcli.Command{
	Name:       "bytes",
	ShortUsage: "bytes <address>",
	ShortHelp:  "print the network-order bytes of an address as hex",
	Exec:       execBytes,
}

func execBytes(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return flag.ErrHelp
	}

	ip, err := addr.ParseAddr(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(ip.Bytes()))
	return nil
}
