// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"context"
	"fmt"
)

var _ Provider = &FakeProvider{}

// FakeProvider is an in-memory Provider for tests.
type FakeProvider struct {
	RegionName string
	Instances  []Instance
	Regions    []string
	// DNS maps instance ids to the address returned by StartInstance.
	DNS map[string]string

	ListErr    error
	StartErr   error
	StopErr    error
	RegionsErr error

	Started []string
	Stopped []string
}

func (f *FakeProvider) Region() string {
	return f.RegionName
}

func (f *FakeProvider) ListInstances(ctx context.Context) ([]Instance, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Instances, nil
}

func (f *FakeProvider) StartInstance(ctx context.Context, id string) (string, error) {
	if f.StartErr != nil {
		return "", f.StartErr
	}
	f.Started = append(f.Started, id)
	for i := range f.Instances {
		if f.Instances[i].ID == id {
			f.Instances[i].State = "running"
		}
	}
	if dns, ok := f.DNS[id]; ok {
		return dns, nil
	}
	return fmt.Sprintf("%s.compute.example", id), nil
}

func (f *FakeProvider) StopInstance(ctx context.Context, id string) error {
	if f.StopErr != nil {
		return f.StopErr
	}
	f.Stopped = append(f.Stopped, id)
	for i := range f.Instances {
		if f.Instances[i].ID == id {
			f.Instances[i].State = "stopping"
		}
	}
	return nil
}

func (f *FakeProvider) DescribeRegions(ctx context.Context) ([]string, error) {
	if f.RegionsErr != nil {
		return nil, f.RegionsErr
	}
	return f.Regions, nil
}
