// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsctx

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lightswitch/lightswitch/internal/cloud"
	"github.com/lightswitch/lightswitch/internal/config"
	"github.com/lightswitch/lightswitch/internal/selector"
)

// DefaultBootstrapRegion is used to list regions before any region is
// configured.
const DefaultBootstrapRegion = "us-east-2"

// ProviderFactory builds the cloud provider for a region and profile.
type ProviderFactory func(ctx context.Context, region, profile string) (cloud.Provider, error)

type Context struct {
	Opts
}

type Opts struct {
	// Fs is the filesystem holding the region file
	Fs afero.Fs
	// Viper holds flags and LIGHTSWITCH_* environment variables
	Viper *viper.Viper
	// Logger receives debug output, it is a no-op unless verbosity is set
	Logger zerolog.Logger
	// Selector asks the operator to pick regions and instances
	Selector selector.Selector
	// NewProvider builds the cloud provider once the region is known
	NewProvider ProviderFactory

	UserAgent string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  selector.DescriptorReader
}

func (c *Context) Verbosity() int {
	return c.Viper.GetInt("verbosity")
}
func (c *Context) SetVerbosity(value int) {
	c.Viper.Set("verbosity", value)
}

// Region is the region override from flags or environment, empty if unset.
func (c *Context) Region() string {
	return c.Viper.GetString("region")
}

// Profile is the profile override from flags or environment, empty if unset.
func (c *Context) Profile() string {
	return c.Viper.GetString("profile")
}

func (c *Context) OutputFormat() string {
	return c.Viper.GetString("output")
}

func (c *Context) WaitTimeout() time.Duration {
	if d := c.Viper.GetDuration("wait-timeout"); d > 0 {
		return d
	}
	return cloud.DefaultWaitTimeout
}

func (c *Context) BootstrapRegion() string {
	if r := c.Viper.GetString("bootstrap-region"); r != "" {
		return r
	}
	return DefaultBootstrapRegion
}

// ConfigPath is the region file location: the config key when set, else
// <home>/.lightswitch.json. It is empty when no home directory is known.
func (c *Context) ConfigPath() string {
	if p := c.Viper.GetString("config"); p != "" {
		return p
	}
	p, _ := config.DefaultPath()
	return p
}

// Store returns the region file store. The legacy file is only read when
// the config path was not overridden.
func (c *Context) Store() *config.Store {
	if c.Viper.GetString("config") != "" {
		return config.NewStore(c.Fs, c.ConfigPath())
	}
	return config.NewStore(c.Fs, c.ConfigPath(), config.LegacyPath())
}

// ColorDisabled follows https://no-color.org/, dumb terminals, old Windows
// consoles and the disable-colors key.
func (c *Context) ColorDisabled() bool {
	if _, nocolor := os.LookupEnv("NO_COLOR"); nocolor {
		return true
	}
	// On Windows WT_SESSION is set by the modern terminal component.
	if runtime.GOOS == "windows" && os.Getenv("WT_SESSION") == "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}
	return c.Viper.GetBool("disable-colors")
}

func DefaultTestingOptions(vip *viper.Viper) *Opts {
	stderr := &strings.Builder{}
	stdin := &FakeStdin{strings.NewReader("")}
	return &Opts{
		Fs:       afero.NewMemMapFs(),
		Viper:    vip,
		Logger:   zerolog.Nop(),
		Selector: &selector.Prompt{In: stdin, Out: stderr},
		NewProvider: func(ctx context.Context, region, profile string) (cloud.Provider, error) {
			return &cloud.FakeProvider{RegionName: region}, nil
		},

		UserAgent: "lightswitch-testing",

		Stdout: &strings.Builder{},
		Stderr: stderr,
		Stdin:  stdin,
	}
}

// ContextWithConfig returns a new Context with the given options. A nil
// opts gives the testing defaults.
func ContextWithConfig(opts *Opts) *Context {
	if opts == nil {
		vip := viper.New()
		vip.SetDefault("config", "/home/operator/.lightswitch.json")
		vip.SetDefault("verbosity", 0)
		opts = DefaultTestingOptions(vip)
	}
	return &Context{Opts: *opts}
}

var _ selector.DescriptorReader = &FakeStdin{}

type FakeStdin struct {
	Reader io.Reader
}

func (f *FakeStdin) Read(p []byte) (n int, err error) {
	return f.Reader.Read(p)
}
func (f *FakeStdin) Fd() uintptr {
	return 0
}
