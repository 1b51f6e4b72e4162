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

// Package addresses geocodes free-text addresses and coordinates.
package addresses

import (
	"context"
	"net/url"
	"strings"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// Client calls the addresses endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// Search resolves a free-text query to the best matching address.
func (c *Client) Search(ctx context.Context, query string) (*models.Address, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apierr.NewParamError(operation.AddressesSearch, "query", "is required")
	}
	var out models.Address
	if err := c.rest.Get(ctx, "/addresses/search", url.Values{"query": {query}}, &out); err != nil {
		return nil, apierr.Annotate(err, operation.AddressesSearch)
	}
	return &out, nil
}

// ReverseGeocode returns the address at coord.
func (c *Client) ReverseGeocode(ctx context.Context, coord models.Coordinate) (*models.Address, error) {
	if err := validate.Struct(operation.AddressesReverseGeocode, coord); err != nil {
		return nil, err
	}
	var out models.Address
	if err := c.rest.Get(ctx, "/addresses/reverse-geocode", coord.Values(), &out); err != nil {
		return nil, apierr.Annotate(err, operation.AddressesReverseGeocode)
	}
	return &out, nil
}
