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

// Package flatfees lists the fixed-price routes configured for the account.
package flatfees

import (
	"context"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// Client calls the flat-fee endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// List returns one page of flat fees.
func (c *Client) List(ctx context.Context, paging *models.PagingOptions) (*models.ListResult[models.FlatFee], error) {
	if paging != nil {
		if err := validate.Struct(operation.FlatFeesList, paging); err != nil {
			return nil, err
		}
	}
	var out models.ListResult[models.FlatFee]
	if err := c.rest.Get(ctx, "/flat-fees", paging.Values(), &out); err != nil {
		return nil, apierr.Annotate(err, operation.FlatFeesList)
	}
	return &out, nil
}
