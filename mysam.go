/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mysam is a client for the MySAM ride-hailing API.
//
// A Client groups one endpoint client per API area. Every call returns either
// a result, an *apierr.ParamError for arguments rejected before any request,
// an *apierr.Error for a business-rule failure reported by the backend, or a
// transport error. Per-operation classifiers such as trips.IsCancelError
// narrow the second kind:
//
//	c, err := mysam.New(mysam.WithCredentials("acme", apiKey))
//	...
//	if _, err := c.Trips.Cancel(ctx, id); trips.IsCancelError(err) {
//		de, _ := trips.AsCancelError(err)
//		log.Printf("cannot cancel: %s", de.Type)
//	}
package mysam

import (
	"fmt"

	"go.uber.org/zap"

	"dirpx.dev/mysam/addresses"
	"dirpx.dev/mysam/bills"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/clients"
	"dirpx.dev/mysam/config"
	"dirpx.dev/mysam/coupons"
	"dirpx.dev/mysam/estimation"
	"dirpx.dev/mysam/flatfees"
	"dirpx.dev/mysam/rest"
	"dirpx.dev/mysam/tripdriver"
	"dirpx.dev/mysam/trips"
)

// ErrMissingCredentials is returned by New when neither a transport nor a
// subdomain and API key were given.
var ErrMissingCredentials = rest.ErrMissingCredentials

// Client is the entry point of the SDK.
type Client struct {
	Clients    *clients.Client
	Addresses  *addresses.Client
	Estimation *estimation.Client
	FlatFees   *flatfees.Client
	Bills      *bills.Client
	Coupons    *coupons.Client
	Trips      *trips.Client
	TripDriver *tripdriver.Client

	rest rest.Client
}

type options struct {
	transport rest.Client
	subdomain string
	apiKey    string
	log       *zap.Logger
	restOpts  []rest.Option
}

// Option configures New.
type Option func(*options)

// WithRESTClient makes every endpoint go through c. Credentials and REST
// options are then ignored.
func WithRESTClient(c rest.Client) Option {
	return func(o *options) { o.transport = c }
}

// WithCredentials selects the default HTTP transport for
// https://{subdomain}.mysam.fr/api.
func WithCredentials(subdomain, apiKey string) Option {
	return func(o *options) {
		o.subdomain = subdomain
		o.apiKey = apiKey
	}
}

// WithLogger sets the logger of the default HTTP transport.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithRESTOptions passes opts to the default HTTP transport.
func WithRESTOptions(opts ...rest.Option) Option {
	return func(o *options) { o.restOpts = append(o.restOpts, opts...) }
}

// New builds a Client from a transport or from credentials.
func New(opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := o.transport
	if t == nil {
		ropts := o.restOpts
		if o.log != nil {
			ropts = append(ropts, rest.WithLogger(o.log))
		}
		hc, err := rest.NewHTTPClient(o.subdomain, o.apiKey, ropts...)
		if err != nil {
			return nil, err
		}
		t = hc
	}

	return &Client{
		Clients:    clients.New(t),
		Addresses:  addresses.New(t),
		Estimation: estimation.New(t),
		FlatFees:   flatfees.New(t),
		Bills:      bills.New(t),
		Coupons:    coupons.New(t),
		Trips:      trips.New(t),
		TripDriver: tripdriver.New(t),
		rest:       t,
	}, nil
}

// NewFromConfig builds a Client over the default HTTP transport, logging
// through cfg.Logger.
func NewFromConfig(cfg config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := cfg.Logger()
	if err != nil {
		return nil, fmt.Errorf("mysam: build logger: %w", err)
	}
	base := []Option{
		WithCredentials(cfg.Subdomain, cfg.APIKey),
		WithLogger(log),
		WithRESTOptions(cfg.RESTOptions()...),
	}
	return New(append(base, opts...)...)
}

// REST returns the transport every endpoint goes through.
func (c *Client) REST() rest.Client { return c.rest }

var registry = mustRegistry()

func mustRegistry() *classify.Registry {
	groups := []*classify.Classifier{
		clients.Errors,
		estimation.Errors,
		coupons.Errors,
		trips.Errors,
		tripdriver.Errors,
	}
	var leaves []*classify.Classifier
	for _, g := range groups {
		leaves = append(leaves, g.Parts()...)
	}
	r, err := classify.NewRegistry(leaves...)
	if err != nil {
		panic(fmt.Errorf("mysam: build error registry: %w", err))
	}
	return r
}

// Registry indexes every per-operation classifier of the SDK by operation
// id. Registry().Endpoint("trips") matches what trips.IsError matches.
func Registry() *classify.Registry { return registry }
