// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

// Package xdg resolves XDG Base Directory paths for identityd.
package xdg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const appName = "identityd"

// ConfigFileName is the name of the default config file.
const ConfigFileName = "config.yaml"

// Getenv reads an environment variable.
type Getenv func(key string) string

// ConfigDir returns the identityd config directory.
// Checks XDG_CONFIG_HOME first, falls back to $HOME/.config.
func ConfigDir(getenv Getenv) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultConfigFile returns the default config file path if it exists,
// or "" if it does not.
func DefaultConfigFile(getenv Getenv) string {
	path := filepath.Join(ConfigDir(getenv), ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return path
		}
		return ""
	}
	return path
}
