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

// Package tripdriver follows the driver assigned to a trip.
package tripdriver

import (
	"context"
	"net/url"
	"strings"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// Client calls the trip-driver endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

func locationPath(tripID string) string {
	return "/trip/" + url.PathEscape(tripID) + "/driver/location"
}

// DriverLocation returns the last known position of the trip's driver.
func (c *Client) DriverLocation(ctx context.Context, tripID string) (*models.DriverLocation, error) {
	if strings.TrimSpace(tripID) == "" {
		return nil, apierr.NewParamError(operation.TripDriverLocation, "tripId", "is required")
	}
	var out models.DriverLocation
	if err := c.rest.Get(ctx, locationPath(tripID), nil, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripDriverLocation)
	}
	return &out, nil
}

// EstimateTimeToPickUp returns how far the driver is from the pick-up point.
// The backend serves it from the driver location route.
func (c *Client) EstimateTimeToPickUp(ctx context.Context, tripID string) (*models.DriverArrivalTimeEstimate, error) {
	if strings.TrimSpace(tripID) == "" {
		return nil, apierr.NewParamError(operation.TripDriverPickUpETA, "tripId", "is required")
	}
	var out models.DriverArrivalTimeEstimate
	if err := c.rest.Get(ctx, locationPath(tripID), nil, &out); err != nil {
		return nil, apierr.Annotate(err, operation.TripDriverPickUpETA)
	}
	return &out, nil
}
