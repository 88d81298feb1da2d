// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controller runs lightswitch commands against a cloud provider.
package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lightswitch/lightswitch/internal/cloud"
	"github.com/lightswitch/lightswitch/internal/config"
	"github.com/lightswitch/lightswitch/internal/options"
	"github.com/lightswitch/lightswitch/internal/selector"
)

const (
	RegionPrompt   = "Enter the number of the region you want to use:"
	InstancePrompt = "Enter the number of the instance:"
)

var (
	ErrInstanceNotFound = errors.New("instance not found")
	ErrAmbiguousName    = errors.New("more than one instance has this name")
	ErrNoInstances      = errors.New("there are no instances to choose from")
	ErrNoRegions        = errors.New("the provider returned no regions")
)

type Controller struct {
	provider cloud.Provider
	selector selector.Selector
	store    *config.Store
	logger   zerolog.Logger
	progress io.Writer
}

func New(provider cloud.Provider, sel selector.Selector, store *config.Store, logger zerolog.Logger) *Controller {
	return &Controller{
		provider: provider,
		selector: sel,
		store:    store,
		logger:   logger,
		progress: io.Discard,
	}
}

// WithProgress makes the controller tell w what it is waiting for.
func (c *Controller) WithProgress(w io.Writer) *Controller {
	c.progress = w
	return c
}

// Configure asks the operator for a region among the ones the provider
// knows about and saves it with profile. The previous file, if any, is
// replaced.
func (c *Controller) Configure(ctx context.Context, profile string) (config.RegionConfig, error) {
	regions, err := c.provider.DescribeRegions(ctx)
	if err != nil {
		return config.RegionConfig{}, err
	}
	if len(regions) == 0 {
		return config.RegionConfig{}, ErrNoRegions
	}
	i, err := c.selector.Select(RegionPrompt, regions)
	if err != nil {
		return config.RegionConfig{}, err
	}
	if profile == "" {
		profile = config.DefaultProfile
	}
	cfg := config.RegionConfig{Profile: profile, Region: regions[i]}
	if err := c.store.Save(cfg); err != nil {
		return config.RegionConfig{}, err
	}
	c.logger.Debug().Str("path", c.store.Path()).Str("region", cfg.Region).Str("profile", cfg.Profile).Msg("configuration saved")
	return cfg, nil
}

func (c *Controller) List(ctx context.Context) ([]cloud.Instance, error) {
	return c.provider.ListInstances(ctx)
}

// ResolveInstance returns the instance targeted by a start or stop command.
// The name option wins over the instance option. Without either, the
// operator picks one of the listed instances.
func (c *Controller) ResolveInstance(ctx context.Context, cmd *options.ParsedCommand) (cloud.Instance, error) {
	if name, ok := cmd.Option(options.FlagName); ok {
		return c.instanceByName(ctx, name)
	}
	if id, ok := cmd.Option(options.FlagInstance); ok {
		if id == "" {
			return cloud.Instance{}, errors.Wrap(ErrInstanceNotFound, "empty instance id")
		}
		return cloud.Instance{ID: id}, nil
	}
	return c.pickInstance(ctx)
}

func (c *Controller) instanceByName(ctx context.Context, name string) (cloud.Instance, error) {
	instances, err := c.provider.ListInstances(ctx)
	if err != nil {
		return cloud.Instance{}, err
	}
	var matches []cloud.Instance
	for _, inst := range instances {
		if inst.Name == name {
			matches = append(matches, inst)
		}
	}
	switch len(matches) {
	case 0:
		return cloud.Instance{}, errors.Wrapf(ErrInstanceNotFound, "no instance named %q in %s", name, c.provider.Region())
	case 1:
		c.logger.Debug().Str("name", name).Str("instance", matches[0].ID).Msg("resolved instance name")
		return matches[0], nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return cloud.Instance{}, errors.Wrapf(ErrAmbiguousName, "%q matches %s", name, strings.Join(ids, ", "))
}

func (c *Controller) pickInstance(ctx context.Context) (cloud.Instance, error) {
	instances, err := c.provider.ListInstances(ctx)
	if err != nil {
		return cloud.Instance{}, err
	}
	if len(instances) == 0 {
		return cloud.Instance{}, errors.Wrapf(ErrNoInstances, "region %s", c.provider.Region())
	}
	labels := make([]string, len(instances))
	for i, inst := range instances {
		labels[i] = inst.Label()
	}
	i, err := c.selector.Select(InstancePrompt, labels)
	if err != nil {
		return cloud.Instance{}, err
	}
	return instances[i], nil
}

// Start starts the targeted instance and returns it with its public
// address filled in.
func (c *Controller) Start(ctx context.Context, cmd *options.ParsedCommand) (cloud.Instance, error) {
	inst, err := c.ResolveInstance(ctx, cmd)
	if err != nil {
		return cloud.Instance{}, err
	}
	fmt.Fprintf(c.progress, "Waiting for instance %s to start...\n", inst.DisplayName())
	dns, err := c.provider.StartInstance(ctx, inst.ID)
	if err != nil {
		return cloud.Instance{}, err
	}
	inst.PublicDNS = dns
	inst.State = "running"
	return inst, nil
}

// Stop requests the targeted instance to stop. It does not wait.
func (c *Controller) Stop(ctx context.Context, cmd *options.ParsedCommand) (cloud.Instance, error) {
	inst, err := c.ResolveInstance(ctx, cmd)
	if err != nil {
		return cloud.Instance{}, err
	}
	if err := c.provider.StopInstance(ctx, inst.ID); err != nil {
		return cloud.Instance{}, err
	}
	inst.State = "stopping"
	return inst, nil
}
