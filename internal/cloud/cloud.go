// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloud defines the compute control plane lightswitch drives.
package cloud

import (
	"context"
	"time"
)

// DefaultWaitTimeout bounds how long StartInstance waits for the running
// state.
const DefaultWaitTimeout = 60 * time.Second

// Instance is a compute instance as reported by the provider.
type Instance struct {
	Name      string `json:"name,omitempty"`
	ID        string `json:"id"`
	State     string `json:"state"`
	PublicDNS string `json:"publicDNS,omitempty"`
}

// DisplayName is "name (id)", or the id alone for unnamed instances.
func (i Instance) DisplayName() string {
	if i.Name == "" {
		return i.ID
	}
	return i.Name + " (" + i.ID + ")"
}

// Label is how an instance is shown in interactive pickers.
func (i Instance) Label() string {
	if i.Name == "" {
		return i.ID + " (" + i.State + ")"
	}
	return i.Name + " - " + i.ID + " (" + i.State + ")"
}

// Provider is the cloud control plane. Errors are returned as reported by
// the provider.
type Provider interface {
	// Region is the region the provider operates on.
	Region() string
	ListInstances(ctx context.Context) ([]Instance, error)
	// StartInstance starts id, waits until it is running and returns its
	// public address.
	StartInstance(ctx context.Context, id string) (string, error)
	StopInstance(ctx context.Context, id string) error
	DescribeRegions(ctx context.Context) ([]string, error)
}
