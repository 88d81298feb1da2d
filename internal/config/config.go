// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config persists the lightswitch region configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// FileName is the name of the region file inside the home directory.
	FileName = ".lightswitch.json"
	// LegacyFileName is the file older releases kept in the working directory.
	LegacyFileName = "lightswitch.json"

	DefaultProfile = "default"
)

var errNoHome = errors.New("could not resolve the home directory")

func getHome() string {
	envs := []string{"HOME", "HOMEPATH"}
	var home string
	for i := 0; i < len(envs) && home == ""; i++ {
		home = os.Getenv(envs[i])
	}
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return home
}

// JoinWithUserDir joins p to the home directory. It returns an error when
// the home directory is unknown.
func JoinWithUserDir(p ...string) (string, error) {
	home := getHome()
	if home == "" {
		return "", errNoHome
	}
	paths := append([]string{home}, p...)
	return filepath.Join(paths...), nil
}

// DefaultPath is <home>/.lightswitch.json.
func DefaultPath() (string, error) {
	return JoinWithUserDir(FileName)
}

// LegacyPath is ./lightswitch.json.
func LegacyPath() string {
	return LegacyFileName
}
