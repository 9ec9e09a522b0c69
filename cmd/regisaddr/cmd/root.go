// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package cmd

// regisaddr is the address console of the regis tools. It parses,
// canonicalizes and converts between the text and byte forms of the
// IPv4/IPv6 addresses, endpoints and prefixes that regisd and its
// clients exchange.

import (
	"context"
	"flag"
	"strings"

	"github.com/peterbourgon/ff/v2/ffcli"
)

func Run(args []string) error {
	if len(args) == 1 && (args[0] == "-V" || args[0] == "--version" || args[0] == "-v") {
		args = []string{"version"}
	}

	fs := flag.NewFlagSet("regisaddr", flag.ExitOnError)
	cmd := &ffcli.Command{
		Name:       "regisaddr",
		ShortUsage: "regisaddr <subcommands> [command flags]",
		ShortHelp:  "inspect and convert the address, endpoint and prefix forms used by the regis tools.",
		LongHelp: strings.TrimSpace(`
All flags can use a single or double hyphen.

For help on subcommands, prefix with -help.

Flags and options are subject to change.
`),
		Subcommands: []*ffcli.Command{
			inspectCmd,
			canonCmd,
			bytesCmd,
			fromBytesCmd,
			versionCmd,
		},
		FlagSet: fs,
		Exec:    func(context.Context, []string) error { return flag.ErrHelp },
	}

	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := cmd.Run(context.Background()); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
