// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	goVersion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// SchemaVersion is written to every saved file. Files without a version
// are the legacy shape and are still accepted.
var SchemaVersion = "1"

// ErrNotFound is returned by Load when no region file exists yet.
var ErrNotFound = errors.New("lightswitch is not configured yet")

// IOError reports a region file that exists but cannot be read, decoded or
// written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s config file %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// RegionConfig is the persisted region setting.
type RegionConfig struct {
	Profile string `json:"profile"`
	Region  string `json:"region"`
}

// New returns a RegionConfig for region with the default profile.
func New(region string) RegionConfig {
	return RegionConfig{Profile: DefaultProfile, Region: region}
}

type fileFormat struct {
	Version string `json:"version,omitempty"`
	Profile string `json:"profile"`
	Region  string `json:"region"`
}

// Store reads and writes a single RegionConfig at a fixed path.
type Store struct {
	fs          afero.Fs
	path        string
	legacyPaths []string
}

// NewStore returns a Store for path. legacyPaths are read, in order, when
// path does not exist. They are never written.
func NewStore(fsys afero.Fs, path string, legacyPaths ...string) *Store {
	return &Store{fs: fsys, path: path, legacyPaths: legacyPaths}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted configuration, ErrNotFound when there is
// none, or an *IOError.
func (s *Store) Load() (RegionConfig, error) {
	for _, p := range append([]string{s.path}, s.legacyPaths...) {
		if p == "" {
			continue
		}
		data, err := afero.ReadFile(s.fs, p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return RegionConfig{}, &IOError{Op: "read", Path: p, Err: err}
		}
		return decode(p, data)
	}
	return RegionConfig{}, ErrNotFound
}

func decode(path string, data []byte) (RegionConfig, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return RegionConfig{}, &IOError{Op: "decode", Path: path, Err: err}
	}
	if f.Version != "" {
		if err := checkVersion(f.Version); err != nil {
			return RegionConfig{}, &IOError{Op: "decode", Path: path, Err: err}
		}
	}
	if f.Region == "" {
		return RegionConfig{}, &IOError{Op: "decode", Path: path, Err: errors.New("region is missing")}
	}
	if f.Profile == "" {
		f.Profile = DefaultProfile
	}
	return RegionConfig{Profile: f.Profile, Region: f.Region}, nil
}

func checkVersion(v string) error {
	got, err := goVersion.NewVersion(v)
	if err != nil {
		return errors.Wrapf(err, "invalid schema version %q", v)
	}
	supported := goVersion.Must(goVersion.NewVersion(SchemaVersion))
	if got.Segments()[0] > supported.Segments()[0] {
		return errors.Errorf("schema version %s is newer than the supported %s", v, SchemaVersion)
	}
	return nil
}

// Save replaces the file at the store path with cfg.
func (s *Store) Save(cfg RegionConfig) error {
	if s.path == "" {
		return &IOError{Op: "write", Path: s.path, Err: errNoHome}
	}
	data, err := json.MarshalIndent(fileFormat{
		Version: SchemaVersion,
		Profile: cfg.Profile,
		Region:  cfg.Region,
	}, "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0600); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		s.fs.Remove(tmp)
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
