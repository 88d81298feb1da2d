// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ec2 implements cloud.Provider on top of Amazon EC2.
package ec2

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lightswitch/lightswitch/internal/cloud"
	"github.com/lightswitch/lightswitch/internal/config"
)

const nameTag = "Name"

var _ cloud.Provider = &Provider{}

// API is the subset of the EC2 client used by Provider.
type API interface {
	awsec2.DescribeInstancesAPIClient
	StartInstances(ctx context.Context, params *awsec2.StartInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error)
	DescribeRegions(ctx context.Context, params *awsec2.DescribeRegionsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeRegionsOutput, error)
}

type Options struct {
	Region  string
	Profile string
	// AppID is appended to the SDK user agent.
	AppID string
	// HTTPClient replaces the SDK default client when set.
	HTTPClient  *http.Client
	WaitTimeout time.Duration
	// WaitMinDelay overrides the waiter's minimum polling delay.
	WaitMinDelay time.Duration
	Logger       zerolog.Logger
}

type Provider struct {
	api    API
	region string
	opts   Options
}

// New loads the AWS configuration from the environment (credentials are
// never handled here) and returns a Provider for opts.Region.
func New(ctx context.Context, opts Options) (*Provider, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.Profile != "" && opts.Profile != config.DefaultProfile {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AppID != "" {
		loadOpts = append(loadOpts, awsconfig.WithAppID(opts.AppID))
	}
	if opts.HTTPClient != nil {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(opts.HTTPClient))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load AWS configuration")
	}
	// the shared profile may be the one choosing the region
	opts.Region = cfg.Region
	return NewWithAPI(awsec2.NewFromConfig(cfg), opts), nil
}

// NewWithAPI returns a Provider using api.
func NewWithAPI(api API, opts Options) *Provider {
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = cloud.DefaultWaitTimeout
	}
	return &Provider{api: api, region: opts.Region, opts: opts}
}

func (p *Provider) Region() string {
	return p.region
}

func (p *Provider) ListInstances(ctx context.Context) ([]cloud.Instance, error) {
	var result []cloud.Instance
	paginator := awsec2.NewDescribeInstancesPaginator(p.api, &awsec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not describe instances")
		}
		result = append(result, instancesFromReservations(page.Reservations)...)
	}
	p.opts.Logger.Debug().Str("region", p.region).Int("count", len(result)).Msg("listed instances")
	return result, nil
}

func (p *Provider) StartInstance(ctx context.Context, id string) (string, error) {
	_, err := p.api.StartInstances(ctx, &awsec2.StartInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not start instance %s", id)
	}
	p.opts.Logger.Debug().Str("instance", id).Dur("timeout", p.opts.WaitTimeout).Msg("waiting for instance to be running")

	waiter := awsec2.NewInstanceRunningWaiter(p.api, func(o *awsec2.InstanceRunningWaiterOptions) {
		if p.opts.WaitMinDelay > 0 {
			o.MinDelay = p.opts.WaitMinDelay
		}
	})
	out, err := waiter.WaitForOutput(ctx, &awsec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	}, p.opts.WaitTimeout)
	if err != nil {
		return "", errors.Wrapf(err, "instance %s did not reach the running state", id)
	}

	for _, inst := range instancesFromReservations(out.Reservations) {
		if inst.ID == id {
			return inst.PublicDNS, nil
		}
	}
	return "", nil
}

func (p *Provider) StopInstance(ctx context.Context, id string) error {
	_, err := p.api.StopInstances(ctx, &awsec2.StopInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return errors.Wrapf(err, "could not stop instance %s", id)
	}
	p.opts.Logger.Debug().Str("instance", id).Msg("stop requested")
	return nil
}

func (p *Provider) DescribeRegions(ctx context.Context) ([]string, error) {
	out, err := p.api.DescribeRegions(ctx, &awsec2.DescribeRegionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "could not describe regions")
	}
	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.ToString(r.RegionName))
	}
	return regions, nil
}

func instancesFromReservations(reservations []types.Reservation) []cloud.Instance {
	var result []cloud.Instance
	for _, r := range reservations {
		for _, i := range r.Instances {
			inst := cloud.Instance{
				ID:        aws.ToString(i.InstanceId),
				PublicDNS: aws.ToString(i.PublicDnsName),
			}
			if i.State != nil {
				inst.State = string(i.State.Name)
			}
			for _, t := range i.Tags {
				if aws.ToString(t.Key) == nameTag {
					inst.Name = aws.ToString(t.Value)
					break
				}
			}
			result = append(result, inst)
		}
	}
	return result
}
