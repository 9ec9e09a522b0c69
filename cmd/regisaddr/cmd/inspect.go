// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v2/ffcli"
	"github.com/regis-project/regisaddr/conf"
	"github.com/regis-project/regisaddr/paths"
	"github.com/regis-project/regisaddr/regislog"
	"github.com/regis-project/regisaddr/types/addr"
	"github.com/regis-project/regisaddr/types/flagtype"
)

var inspectArgs struct {
	configPath string
	logFile    string
	logLevel   string
	json       bool
	endpoint   bool
	port       uint16
	debug      bool
}

var inspectCmd = &ffcli.Command{
	Name:       "inspect",
	ShortUsage: "inspect [flags] <address|endpoint|prefix>",
	ShortHelp:  "parse one text form and report everything known about it",
	FlagSet: (func() *flag.FlagSet {
		fs := flag.NewFlagSet("inspect", flag.ExitOnError)
		fs.StringVar(&inspectArgs.configPath, "config", paths.DefaultConfigFile(), "config file path")
		fs.StringVar(&inspectArgs.logFile, "logfile", paths.DefaultLogFile(), "set logfile path")
		fs.StringVar(&inspectArgs.logLevel, "loglevel", regislog.InfoLevelStr, "set log level")
		fs.BoolVar(&inspectArgs.json, "json", false, "print the report as json")
		fs.BoolVar(&inspectArgs.endpoint, "endpoint", false, "treat a bare address as an endpoint on the default port")
		fs.Var(flagtype.PortValue(&inspectArgs.port, 0), "port", "default port for -endpoint, 0 means the config client_port")
		fs.BoolVar(&inspectArgs.debug, "debug", false, "for debug")
		return fs
	})(),
	Exec: execInspect,
}

func execInspect(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return flag.ErrHelp
	}

	log, err := regislog.NewLogger("regisaddr inspect", inspectArgs.logLevel, inspectArgs.logFile, inspectArgs.debug)
	if err != nil {
		fmt.Printf("failed to initialize logger. because %v", err)
		return nil
	}

	spec, err := conf.NewSpec(inspectArgs.configPath, log).CreateSpec()
	if err != nil {
		log.Logger.Warnf("failed to load config with %s, because %v", inspectArgs.configPath, err)
		return err
	}
	if err := spec.Validate(); err != nil {
		log.Logger.Warnf("config %s is not usable, because %v", inspectArgs.configPath, err)
		return err
	}

	defPort := inspectArgs.port
	if defPort == 0 {
		defPort = spec.ClientPort
	}

	rep, err := buildReport(args[0], inspectArgs.endpoint, defPort)
	if err != nil {
		log.Logger.Warnf("failed to parse %q, because %v", args[0], err)
		return err
	}

	if inspectArgs.json || spec.Output == conf.OutputJSON {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	rep.printText(os.Stdout)
	return nil
}

// report is everything inspect can say about one parsed input.
type report struct {
	Input     string   `json:"input"`
	Kind      string   `json:"kind"`
	Family    string   `json:"family"`
	Canonical string   `json:"canonical"`
	Expanded  string   `json:"expanded,omitempty"`
	Bytes     string   `json:"bytes,omitempty"`
	Port      uint16   `json:"port,omitempty"`
	Bits      *int     `json:"bits,omitempty"`
	Masked    string   `json:"masked,omitempty"`
	Unmapped  string   `json:"unmapped,omitempty"`
	Flags     []string `json:"flags,omitempty"`
}

// buildReport tries the prefix, endpoint and plain address grammars
// in that order, the narrowest one that accepts the input winning.
func buildReport(in string, asEndpoint bool, defPort uint16) (*report, error) {
	if p, err := addr.ParsePrefix(in); err == nil {
		return prefixReport(in, p), nil
	}
	if ap, err := addr.ParseAddrPort(in); err == nil {
		return endpointReport(in, ap), nil
	}
	if asEndpoint {
		ap, err := addr.ParseAddrPortDefault(in, defPort)
		if err != nil {
			return nil, err
		}
		return endpointReport(in, ap), nil
	}
	ip, err := addr.ParseAddr(in)
	if err != nil {
		return nil, err
	}
	return addrReport(in, ip), nil
}

func addrReport(in string, ip addr.Addr) *report {
	r := &report{
		Input:     in,
		Kind:      "address",
		Family:    ip.Family().String(),
		Canonical: ip.String(),
		Bytes:     hex.EncodeToString(ip.Bytes()),
		Flags:     addrFlags(ip),
	}
	if ip.Is6() {
		r.Expanded = ip.StringExpanded()
	}
	if ip.Is4In6() {
		r.Unmapped = ip.Unmap().String()
	}
	return r
}

func endpointReport(in string, ap addr.AddrPort) *report {
	r := addrReport(in, ap.Addr())
	r.Kind = "endpoint"
	r.Canonical = ap.String()
	r.Port = ap.Port()
	return r
}

func prefixReport(in string, p addr.Prefix) *report {
	bits := p.Bits()
	return &report{
		Input:     in,
		Kind:      "prefix",
		Family:    p.Addr().Family().String(),
		Canonical: p.String(),
		Bits:      &bits,
		Masked:    p.Masked().String(),
	}
}

func addrFlags(ip addr.Addr) []string {
	var fl []string
	if ip.IsUnspecified() {
		fl = append(fl, "unspecified")
	}
	if ip.IsLoopback() {
		fl = append(fl, "loopback")
	}
	if ip.IsMulticast() {
		fl = append(fl, "multicast")
	}
	if ip.IsLinkLocalUnicast() {
		fl = append(fl, "link-local")
	}
	if ip.IsPrivate() {
		fl = append(fl, "private")
	}
	if ip.Is4In6() {
		fl = append(fl, "v4-mapped")
	}
	return fl
}

func (r *report) printText(w io.Writer) {
	fmt.Fprintf(w, "input:     %s\n", r.Input)
	fmt.Fprintf(w, "kind:      %s\n", r.Kind)
	fmt.Fprintf(w, "family:    %s\n", r.Family)
	fmt.Fprintf(w, "canonical: %s\n", r.Canonical)
	if r.Expanded != "" {
		fmt.Fprintf(w, "expanded:  %s\n", r.Expanded)
	}
	if r.Bytes != "" {
		fmt.Fprintf(w, "bytes:     %s\n", r.Bytes)
	}
	if r.Kind == "endpoint" {
		fmt.Fprintf(w, "port:      %d\n", r.Port)
	}
	if r.Bits != nil {
		fmt.Fprintf(w, "bits:      %d\n", *r.Bits)
	}
	if r.Masked != "" {
		fmt.Fprintf(w, "masked:    %s\n", r.Masked)
	}
	if r.Unmapped != "" {
		fmt.Fprintf(w, "unmapped:  %s\n", r.Unmapped)
	}
	if len(r.Flags) > 0 {
		fmt.Fprintf(w, "flags:     %s\n", strings.Join(r.Flags, " "))
	}
}
