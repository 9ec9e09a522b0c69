// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package conf

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/regis-project/regisaddr/paths"
	"github.com/regis-project/regisaddr/regislog"
	"github.com/regis-project/regisaddr/types/addr"
	"github.com/regis-project/regisaddr/types/flagtype"
	"github.com/regis-project/regisaddr/utils"
)

// Output modes for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Spec is the regisaddr config json
// path's here => '~/.local/share/regisaddr/config.json'
type Spec struct {
	// Server is the regisd host the tools talk to; the zero Addr
	// means unset.
	Server addr.Addr `json:"server"`

	ClientPort    uint16 `json:"client_port"`
	BroadcastPort uint16 `json:"broadcast_port"`
	Output        string `json:"output"`
	LogFile       string `json:"logfile"`
	LogLevel      string `json:"log_level"`

	path string

	log *regislog.Logger
}

func NewSpec(path string, log *regislog.Logger) *Spec {
	if path == "" {
		path = paths.DefaultConfigFile()
	}
	return &Spec{
		ClientPort:    flagtype.DefaultClientPort,
		BroadcastPort: flagtype.DefaultBroadcastPort,
		Output:        OutputText,
		LogFile:       paths.DefaultLogFile(),
		LogLevel:      regislog.InfoLevelStr,
		path:          path,
		log:           log,
	}
}

// CreateSpec loads the Spec at path, writing the defaults out on
// first use so the operator has a file to edit.
func (s *Spec) CreateSpec() (*Spec, error) {
	b, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s.writeSpec()
	case err != nil:
		s.log.Logger.Errorf("%s could not be read. exception error: %s", s.path, err.Error())
		return nil, err
	default:
		if err := json.Unmarshal(b, s); err != nil {
			s.log.Logger.Warnf("cannot read config file %s, because %v", s.path, err)
			return nil, err
		}
		s.fillDefaults()
		return s, nil
	}
}

// fillDefaults papers over fields an operator blanked by hand.
func (s *Spec) fillDefaults() {
	if s.ClientPort == 0 {
		s.ClientPort = flagtype.DefaultClientPort
	}
	if s.BroadcastPort == 0 {
		s.BroadcastPort = flagtype.DefaultBroadcastPort
	}
	if s.Output == "" {
		s.Output = OutputText
	}
	if s.LogFile == "" {
		s.LogFile = paths.DefaultLogFile()
	}
	if s.LogLevel == "" {
		s.LogLevel = regislog.InfoLevelStr
	}
}

func (s *Spec) writeSpec() (*Spec, error) {
	if err := paths.MkClientDir(filepath.Dir(s.path)); err != nil {
		s.log.Logger.Warnf("failed to create directory with %s, because %s", s.path, err.Error())
		return nil, err
	}

	b, err := json.MarshalIndent(*s, "", "\t")
	if err != nil {
		return nil, err
	}

	if err = utils.AtomicWriteFile(s.path, b, 0644); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate reports problems an operator could have typed into the
// file by hand.
func (s *Spec) Validate() error {
	if s.Output != OutputText && s.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, s.Output)
	}
	if _, err := regislog.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ServerEndpoint returns the endpoint of the configured regisd
// server, joining Server with ClientPort.
func (s *Spec) ServerEndpoint() (addr.AddrPort, error) {
	if !s.Server.IsValid() {
		return addr.AddrPort{}, errors.New("no server address configured")
	}
	return addr.AddrPortFrom(s.Server, s.ClientPort), nil
}

// BroadcastEndpoint is like ServerEndpoint for the discovery port.
func (s *Spec) BroadcastEndpoint() (addr.AddrPort, error) {
	if !s.Server.IsValid() {
		return addr.AddrPort{}, errors.New("no server address configured")
	}
	return addr.AddrPortFrom(s.Server, s.BroadcastPort), nil
}
