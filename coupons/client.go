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

// Package coupons assigns promotion codes to clients.
package coupons

import (
	"context"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// CreateParams assigns a coupon to a client.
type CreateParams struct {
	ClientID   string `json:"clientId" validate:"required"`
	CouponCode string `json:"couponCode" validate:"required"`
}

// Client calls the coupons endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// Create assigns a coupon to a client. Failures of type CreateErrors are
// narrowed by AsCreateError.
func (c *Client) Create(ctx context.Context, p CreateParams) (*models.Coupon, error) {
	if err := validate.Struct(operation.CouponsCreate, p); err != nil {
		return nil, err
	}
	var out models.Coupon
	if err := c.rest.Post(ctx, "/coupons", p, &out); err != nil {
		return nil, apierr.Annotate(err, operation.CouponsCreate)
	}
	return &out, nil
}
