// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/regis-project/regisaddr/conf"
	"github.com/regis-project/regisaddr/regislog"
	"github.com/regis-project/regisaddr/types/addr"
)

func newTestLogger(t *testing.T) *regislog.Logger {
	t.Helper()
	log, err := regislog.NewLogger("conf test", regislog.ErrorLevelStr, filepath.Join(t.TempDir(), "conf_test.log"), false)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

func TestCreateSpecFirstUse(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")

	spec, err := conf.NewSpec(path, log).CreateSpec()
	if err != nil {
		t.Fatalf("CreateSpec: %v", err)
	}
	if spec.ClientPort != 1026 || spec.BroadcastPort != 1027 {
		t.Errorf("ports = %d/%d, want 1026/1027", spec.ClientPort, spec.BroadcastPort)
	}
	if spec.Output != conf.OutputText {
		t.Errorf("output = %q, want %q", spec.Output, conf.OutputText)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not written: %v", err)
	}

	// A second load must read the file it just wrote.
	spec2, err := conf.NewSpec(path, log).CreateSpec()
	if err != nil {
		t.Fatalf("CreateSpec reload: %v", err)
	}
	if spec2.ClientPort != spec.ClientPort || spec2.Output != spec.Output {
		t.Errorf("reload = %+v, want %+v", spec2, spec)
	}
}

func TestCreateSpecReadsExisting(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"server":"10.0.0.1","client_port":4000,"broadcast_port":0,"output":"json"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := conf.NewSpec(path, log).CreateSpec()
	if err != nil {
		t.Fatalf("CreateSpec: %v", err)
	}
	if spec.Server != addr.MustParseAddr("10.0.0.1") {
		t.Errorf("server = %v, want 10.0.0.1", spec.Server)
	}
	if spec.ClientPort != 4000 {
		t.Errorf("client_port = %d, want 4000", spec.ClientPort)
	}
	if spec.BroadcastPort != 1027 {
		t.Errorf("broadcast_port = %d, want the 1027 default back", spec.BroadcastPort)
	}
	if spec.Output != conf.OutputJSON {
		t.Errorf("output = %q, want json", spec.Output)
	}
}

func TestCreateSpecBadJSON(t *testing.T) {
	log := newTestLogger(t)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := conf.NewSpec(path, log).CreateSpec(); err == nil {
		t.Fatal("CreateSpec accepted a malformed file")
	}
}

func TestValidate(t *testing.T) {
	log := newTestLogger(t)

	spec := conf.NewSpec(filepath.Join(t.TempDir(), "config.json"), log)
	if err := spec.Validate(); err != nil {
		t.Errorf("default spec is invalid: %v", err)
	}

	spec.Output = "yaml"
	if err := spec.Validate(); err == nil {
		t.Error("Validate accepted output=yaml")
	}

	spec.Output = conf.OutputText
	spec.LogLevel = "verbose"
	if err := spec.Validate(); err == nil {
		t.Error("Validate accepted log_level=verbose")
	}
}

func TestEndpoints(t *testing.T) {
	log := newTestLogger(t)
	spec := conf.NewSpec(filepath.Join(t.TempDir(), "config.json"), log)

	if _, err := spec.ServerEndpoint(); err == nil {
		t.Error("ServerEndpoint succeeded with no server configured")
	}

	spec.Server = addr.MustParseAddr("10.0.0.1")
	ep, err := spec.ServerEndpoint()
	if err != nil {
		t.Fatalf("ServerEndpoint: %v", err)
	}
	if got := ep.String(); got != "10.0.0.1:1026" {
		t.Errorf("ServerEndpoint = %q, want 10.0.0.1:1026", got)
	}

	bep, err := spec.BroadcastEndpoint()
	if err != nil {
		t.Fatalf("BroadcastEndpoint: %v", err)
	}
	if got := bep.String(); got != "10.0.0.1:1027" {
		t.Errorf("BroadcastEndpoint = %q, want 10.0.0.1:1027", got)
	}
}
