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

// Package trips books, inspects and searches trips.
package trips

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// Client calls the trips endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

func tripPath(op operation.Operation, id int64, suffix string) (string, error) {
	if id <= 0 {
		return "", apierr.NewParamError(op, "tripId", "must be positive")
	}
	return "/trips/" + strconv.FormatInt(id, 10) + suffix, nil
}

// Get returns a trip.
func (c *Client) Get(ctx context.Context, id int64) (*models.Trip, error) {
	path, err := tripPath(operation.TripsGet, id, "")
	if err != nil {
		return nil, err
	}
	var out models.Trip
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripsGet)
	}
	return &out, nil
}

// Cancel cancels a trip and returns it in its new state. Failures of type
// CancelErrors are narrowed by AsCancelError.
func (c *Client) Cancel(ctx context.Context, id int64) (*models.Trip, error) {
	path, err := tripPath(operation.TripsCancel, id, "/cancel")
	if err != nil {
		return nil, err
	}
	var out models.Trip
	if err := c.rest.Put(ctx, path, nil, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripsCancel)
	}
	return &out, nil
}

// EstimateCancelationPrice returns what canceling the trip now would cost.
func (c *Client) EstimateCancelationPrice(ctx context.Context, id int64) (float64, error) {
	path, err := tripPath(operation.TripsCancelEstimation, id, "/cancel/estimation")
	if err != nil {
		return 0, err
	}
	var price float64
	if err := c.rest.Get(ctx, path, nil, &price); err != nil {
		return 0, apierr.Annotate(err, operation.TripsCancelEstimation)
	}
	return price, nil
}

// CreateDiscount sets the trip price after a partner discount, in cents.
func (c *Client) CreateDiscount(ctx context.Context, id int64, zdPrice int64) (*models.Trip, error) {
	path, err := tripPath(operation.TripsDiscount, id, "/discount")
	if err != nil {
		return nil, err
	}
	if zdPrice < 0 {
		return nil, apierr.NewParamError(operation.TripsDiscount, "zeroDecimalPriceAfterDiscount", "must be at least 0")
	}
	body := struct {
		Price int64 `json:"zeroDecimalPriceAfterDiscount"`
	}{zdPrice}

	var out models.Trip
	if err := c.rest.Put(ctx, path, body, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripsDiscount)
	}
	return &out, nil
}

// Create books a trip. Illegal parameters are reported before any request.
func (c *Client) Create(ctx context.Context, p CreateParams) (*models.Trip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var out models.Trip
	if err := c.rest.Post(ctx, "/trips/new", p, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripsCreate)
	}
	return &out, nil
}

// Search lists the trips starting within r, narrowed by filter.
func (c *Client) Search(ctx context.Context, r DateRange, filter SearchFilter) (*models.ListResult[models.Trip], error) {
	if filter == nil {
		filter = AllTrips{}
	}
	if err := validate.Struct(operation.TripsSummary, r); err != nil {
		return nil, err
	}
	if f, ok := filter.(ClientTrips); ok {
		if err := validate.Struct(operation.TripsSummary, f); err != nil {
			return nil, err
		}
	}

	var out models.ListResult[models.Trip]
	var err error
	switch method, path := filter.route(); method {
	case http.MethodPut:
		err = c.rest.Put(ctx, path, r, &out)
	case http.MethodPost:
		err = c.rest.Post(ctx, path, r, &out)
	default:
		return nil, fmt.Errorf("trips: unsupported search method %q", method)
	}
	if err != nil {
		return nil, apierr.Annotate(err, operation.TripsSummary)
	}
	return &out, nil
}
