// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lightswitch/lightswitch/internal/cloud"
	"github.com/lightswitch/lightswitch/internal/cloud/ec2"
	"github.com/lightswitch/lightswitch/internal/lsctx"
	"github.com/lightswitch/lightswitch/internal/options"
	"github.com/lightswitch/lightswitch/internal/selector"
	"github.com/lightswitch/lightswitch/pkg/printer"
)

var version cmdVersion

type cmdVersion struct {
	Version string
	Commit  string
	Date    string
}

func (v *cmdVersion) String() string {
	if v.Version == "" {
		v.Version = "dev"
	}
	if v.Commit == "" && v.Date == "" {
		return v.Version
	}
	return fmt.Sprintf("%s (%s - %s)", v.Version, v.Commit, v.Date)
}

// Execute builds the cli and runs it with os.Args, exiting non-zero on
// failure. SIGINT cancels any pending cloud call.
func Execute(_version, _commit, _dateStr string) {
	version = cmdVersion{_version, _commit, _dateStr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rootCmd := NewRootCmd(viper.GetViper(), nil)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if isUsageError(err) {
		os.Exit(2)
	}
	if err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(vip *viper.Viper, lsCtx *lsctx.Context) *cobra.Command {
	vip = preSetupViper(vip)
	if lsCtx == nil {
		lsCtx = NewProductionContext(vip, afero.NewOsFs())
	}
	rootCmd := newBareRootCmd(lsCtx)
	setupPFlags(rootCmd, lsCtx)
	return rootCmd
}

func newBareRootCmd(lsCtx *lsctx.Context) *cobra.Command {
	schema := options.DefaultSchema()
	rootCmd := &cobra.Command{
		Use:   "lightswitch",
		Short: "Lists, starts and stops cloud instances",

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(lsCtx, schema, cmd, args)
		},
		Args: cobra.ArbitraryArgs,

		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	rootCmd.SetIn(lsCtx.Stdin)
	rootCmd.SetOut(lsCtx.Stdout)
	rootCmd.SetErr(lsCtx.Stderr)
	return rootCmd
}

func runRootCmd(lsCtx *lsctx.Context, schema *options.Schema, cmd *cobra.Command, args []string) error {
	rest, err := parseFirstFlagsOnly(cmd, args)
	if err != nil {
		return usageError(lsCtx, schema, cmd, err)
	}
	syncChangedFlags(lsCtx, cmd)

	if versionVal, _ := cmd.Flags().GetBool("version"); versionVal {
		fmt.Fprintf(lsCtx.Stdout, "lightswitch version: %s\n", version.String())
		return nil
	}
	if helpVal, _ := cmd.Flags().GetBool("help"); helpVal {
		printHelp(lsCtx.Stdout, schema, cmd)
		return nil
	}

	setupOutput(lsCtx)

	parsed, err := schema.Parse(append([]string{cmd.Name()}, rest...))
	if err != nil {
		return usageError(lsCtx, schema, cmd, err)
	}
	if parsed.Kind == options.Help {
		printHelp(lsCtx.Stdout, schema, cmd)
		return nil
	}
	format, err := printer.FormatAs(lsCtx.OutputFormat())
	if err != nil {
		return usageError(lsCtx, schema, cmd, err)
	}

	lsCtx.Logger.Debug().Str("command", parsed.Kind.String()).Interface("options", parsed.Options()).Msg("parsed arguments")
	err = runCommand(cmd.Context(), lsCtx, parsed, format)
	if err != nil {
		fmt.Fprintf(lsCtx.Stderr, "%s %v\n", color.RedString("Error:"), err)
	}
	return err
}

// parseFirstFlagsOnly parses the global flags found before the command word
// and returns the remaining arguments.
func parseFirstFlagsOnly(cmd *cobra.Command, args []string) ([]string, error) {
	if cmd == nil {
		return args, nil
	}
	cmd.DisableFlagParsing = false
	for len(args) > 0 {
		s := args[0]
		if len(s) < 2 || s[0] != '-' {
			return args, nil // any non-flag means we're done
		}
		args = args[1:]

		flagName := s[1:]
		if s[1] == '-' {
			if len(s) == 2 { // "--" terminates the flags
				return args, nil
			}
			flagName = s[2:]
		}
		if strings.Contains(flagName, "=") {
			if err := cmd.ParseFlags([]string{s}); err != nil {
				return nil, err
			}
			continue
		}

		flag := cmd.Flags().Lookup(flagName)
		if flag == nil && len(flagName) == 1 {
			flag = cmd.Flags().ShorthandLookup(flagName)
		}
		if flag == nil {
			return nil, fmt.Errorf("unknown flag: %s", s)
		}

		if flag.Value.Type() == "bool" {
			if err := cmd.ParseFlags([]string{s}); err != nil {
				return nil, err
			}
			continue
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("flag needs an argument: %s", s)
		}
		if err := cmd.ParseFlags([]string{s, args[0]}); err != nil {
			return nil, err
		}
		args = args[1:]
	}
	return args, nil
}

// syncChangedFlags copies the flags given on the command line into viper,
// so they also win over values set directly on it.
func syncChangedFlags(lsCtx *lsctx.Context, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("verbosity") {
		v, _ := flags.GetInt("verbosity")
		lsCtx.SetVerbosity(v)
	}
	for _, key := range boundFlags {
		if key != "verbosity" && flags.Changed(key) {
			lsCtx.Viper.Set(key, flags.Lookup(key).Value.String())
		}
	}
}

// setupOutput applies the color and logging settings once flags are known.
func setupOutput(lsCtx *lsctx.Context) {
	if lsCtx.ColorDisabled() {
		color.NoColor = true
	}
	if lsCtx.Verbosity() >= 1 {
		lsCtx.Logger = zerolog.New(zerolog.ConsoleWriter{Out: lsCtx.Stderr, NoColor: color.NoColor}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
}

// preSetupViper prepares viper for being used by NewProductionContext()
func preSetupViper(vip *viper.Viper) *viper.Viper {
	if vip == nil {
		vip = viper.New()
	}
	vip.SetEnvPrefix("lightswitch")
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv() // read in environment variables that match
	return vip
}

// boundFlags are the global flags also readable as LIGHTSWITCH_* variables.
var boundFlags = []string{"region", "profile", "config", "output", "verbosity", "wait-timeout"}

// setupPFlags declares the global flags and binds them to viper, so a flag
// wins over its LIGHTSWITCH_* variable.
func setupPFlags(rootCmd *cobra.Command, lsCtx *lsctx.Context) {
	var format printer.OutputFormat
	flags := rootCmd.Flags()
	flags.String("region", "", "Region to work on, instead of the configured one")
	flags.String("profile", "", "Named profile of the shared cloud credentials")
	flags.String("config", "", "Region file (default is $HOME/.lightswitch.json)")
	flags.VarP(&format, "output", "o", "Output format, one of:\n"+printer.FormatsHelp())
	flags.IntP("verbosity", "v", 0, "Verbosity level: 1 => debug logs and requests; 2 => request and response bodies")
	flags.Duration("wait-timeout", cloud.DefaultWaitTimeout, "How long start waits for the instance to be running")
	flags.Bool("version", false, "Print the version and exit")
	flags.BoolP("help", "h", false, "Show this help")

	for _, key := range boundFlags {
		lsCtx.Viper.BindPFlag(key, flags.Lookup(key))
	}
}

func NewProductionContext(vip *viper.Viper, fs afero.Fs) *lsctx.Context {
	lsCtx := lsctx.ContextWithConfig(productionOpts(fs, vip))
	lsCtx.NewProvider = newEC2Provider(lsCtx)
	return lsCtx
}

func productionOpts(fs afero.Fs, vip *viper.Viper) *lsctx.Opts {
	return &lsctx.Opts{
		Fs:       fs,
		Viper:    vip,
		Logger:   zerolog.Nop(),
		Selector: selector.ForInput(os.Stdin, os.Stderr),

		UserAgent: userAgent(),

		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

func userAgent() string {
	v := strings.TrimPrefix(version.Version, "v")
	if v == "" {
		v = "dev"
	}
	return "lightswitch-" + v
}

func newEC2Provider(lsCtx *lsctx.Context) lsctx.ProviderFactory {
	return func(ctx context.Context, region, profile string) (cloud.Provider, error) {
		opts := ec2.Options{
			Region:      region,
			Profile:     profile,
			AppID:       lsCtx.UserAgent,
			WaitTimeout: lsCtx.WaitTimeout(),
			Logger:      lsCtx.Logger,
		}
		if lsCtx.Verbosity() >= 1 {
			opts.HTTPClient = lsCtx.HTTPClient()
		}
		return ec2.New(ctx, opts)
	}
}
