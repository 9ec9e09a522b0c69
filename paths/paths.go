// Copyright (c) 2025 Regis Project Authors All rights reserved.
// Use of this source code is governed by a BSD 3-Clause License
// license that can be found in the LICENSE file.

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultClientDir returns the per-user directory holding the
// regisaddr config and log: $HOME/.local/share/regisaddr on
// unix-likes, %LOCALAPPDATA%\regisaddr on Windows. The layout is
// shared with the other regis tools.
func DefaultClientDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "regisaddr")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".local", "share", "regisaddr")
	}
}

func DefaultConfigFile() string {
	if dir := DefaultClientDir(); dir != "" {
		return filepath.Join(dir, "config.json")
	}
	return ""
}

func DefaultLogFile() string {
	if dir := DefaultClientDir(); dir != "" {
		return filepath.Join(dir, "regisaddr.log")
	}
	return ""
}

func MkClientDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}
