// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/lightswitch/lightswitch/internal/cloud"
	"github.com/lightswitch/lightswitch/internal/config"
	"github.com/lightswitch/lightswitch/internal/controller"
	"github.com/lightswitch/lightswitch/internal/lsctx"
	"github.com/lightswitch/lightswitch/internal/options"
	"github.com/lightswitch/lightswitch/internal/types"
	"github.com/lightswitch/lightswitch/pkg/printer"
)

func runCommand(ctx context.Context, lsCtx *lsctx.Context, parsed *options.ParsedCommand, format printer.OutputFormat) error {
	store := lsCtx.Store()
	if parsed.Kind == options.Configure {
		return runConfigure(ctx, lsCtx, store, format)
	}

	cfg, err := loadOrSetup(ctx, lsCtx, store)
	if err != nil {
		return err
	}
	provider, err := lsCtx.NewProvider(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		return err
	}
	ctrl := controller.New(provider, lsCtx.Selector, store, lsCtx.Logger).WithProgress(lsCtx.Stderr)

	switch parsed.Kind {
	case options.List:
		return runList(ctx, lsCtx, ctrl, provider.Region(), format)
	case options.Start:
		inst, err := ctrl.Start(ctx, parsed)
		if err != nil {
			return err
		}
		return printChange(lsCtx, "start", provider.Region(), inst, format)
	case options.Stop:
		inst, err := ctrl.Stop(ctx, parsed)
		if err != nil {
			return err
		}
		return printChange(lsCtx, "stop", provider.Region(), inst, format)
	}
	return fmt.Errorf("unhandled command: %s", parsed.Kind)
}

// loadOrSetup returns the region configuration with the region and profile
// overrides applied. A missing or unreadable region file starts the region
// setup, unless the region override already tells where to work.
func loadOrSetup(ctx context.Context, lsCtx *lsctx.Context, store *config.Store) (config.RegionConfig, error) {
	cfg, err := store.Load()
	if err != nil {
		notice := "lightswitch is not configured yet, choose the region to work on."
		var ioErr *config.IOError
		switch {
		case errors.Is(err, config.ErrNotFound):
		case errors.As(err, &ioErr):
			fmt.Fprintf(lsCtx.Stderr, "%s %v\n", color.YellowString("Warning:"), err)
			notice = "Ignoring the region file, choose the region to work on again."
		default:
			return config.RegionConfig{}, err
		}

		if lsCtx.Region() != "" {
			cfg = config.RegionConfig{Profile: config.DefaultProfile}
		} else {
			fmt.Fprintln(lsCtx.Stderr, color.YellowString(notice))
			cfg, err = configure(ctx, lsCtx, store, lsCtx.Profile())
			if err != nil {
				return config.RegionConfig{}, err
			}
			fmt.Fprintf(lsCtx.Stderr, "Region %s saved to %s\n", cfg.Region, store.Path())
		}
	}

	if region := lsCtx.Region(); region != "" {
		cfg.Region = region
	}
	if profile := lsCtx.Profile(); profile != "" {
		cfg.Profile = profile
	}
	lsCtx.Logger.Debug().Str("region", cfg.Region).Str("profile", cfg.Profile).Msg("using configuration")
	return cfg, nil
}

// configure lists the regions from the bootstrap region and saves the
// operator's choice.
func configure(ctx context.Context, lsCtx *lsctx.Context, store *config.Store, profile string) (config.RegionConfig, error) {
	bootstrap, err := lsCtx.NewProvider(ctx, lsCtx.BootstrapRegion(), profile)
	if err != nil {
		return config.RegionConfig{}, err
	}
	return controller.New(bootstrap, lsCtx.Selector, store, lsCtx.Logger).Configure(ctx, profile)
}

func runConfigure(ctx context.Context, lsCtx *lsctx.Context, store *config.Store, format printer.OutputFormat) error {
	profile := lsCtx.Profile()
	if profile == "" {
		current, err := store.Load()
		if err == nil {
			profile = current.Profile
		} else if !errors.Is(err, config.ErrNotFound) {
			lsCtx.Logger.Debug().Err(err).Msg("ignoring the current region file")
		}
	}
	cfg, err := configure(ctx, lsCtx, store, profile)
	if err != nil {
		return err
	}
	if format != printer.Table {
		return printer.Print(lsCtx.Stdout, cfg, format)
	}
	fmt.Fprintf(lsCtx.Stdout, "Region %s saved to %s\n", cfg.Region, store.Path())
	return printer.PrintTable(lsCtx.Stdout, cfg)
}

func runList(ctx context.Context, lsCtx *lsctx.Context, ctrl *controller.Controller, region string, format printer.OutputFormat) error {
	instances, err := ctrl.List(ctx)
	if err != nil {
		return err
	}
	list := types.InstanceList(instances)
	if list == nil {
		list = types.InstanceList{}
	}
	if format != printer.Table {
		return printer.Print(lsCtx.Stdout, list, format)
	}
	if len(list) == 0 {
		fmt.Fprintf(lsCtx.Stdout, "No instances found in %s\n", region)
		return nil
	}
	fmt.Fprintf(lsCtx.Stdout, "Current instances in %s\n", region)
	return printer.PrintTable(lsCtx.Stdout, list)
}

func printChange(lsCtx *lsctx.Context, action, region string, inst cloud.Instance, format printer.OutputFormat) error {
	if format != printer.Table {
		return printer.Print(lsCtx.Stdout, types.InstanceChange{Action: action, Region: region, Instance: inst}, format)
	}
	label := inst.DisplayName()
	switch {
	case action == "stop":
		fmt.Fprintf(lsCtx.Stdout, "Instance %s is stopping\n", label)
	case inst.PublicDNS == "":
		fmt.Fprintf(lsCtx.Stdout, "Instance %s is running without a public DNS name\n", label)
	default:
		fmt.Fprintf(lsCtx.Stdout, "Instance %s is running at %s\n", label, color.GreenString(inst.PublicDNS))
	}
	return nil
}
