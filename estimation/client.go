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

// Package estimation quotes trips before they are booked.
package estimation

import (
	"context"
	"time"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// ApproachTimeParams asks how long a vehicle of the given type needs to
// reach a point.
type ApproachTimeParams struct {
	models.Coordinate
	VehicleType models.VehicleType `json:"vehicleType" validate:"required,oneof=CAR LUXE VAN"`
}

// EstimateParams describes a prospective trip.
type EstimateParams struct {
	ClientID              string             `json:"clientId"`
	FlatFeeID             *int64             `json:"flatFeeId,omitempty"`
	FromLatitude          float64            `json:"fromLatitude" validate:"latitude"`
	FromLongitude         float64            `json:"fromLongitude" validate:"longitude"`
	SignificantDisability *bool              `json:"significantDisability,omitempty"`
	StartDate             *time.Time         `json:"startDate,omitempty"`
	ToLatitude            float64            `json:"toLatitude" validate:"latitude"`
	ToLongitude           float64            `json:"toLongitude" validate:"longitude"`
	VehicleType           models.VehicleType `json:"vehicleType" validate:"required,oneof=CAR LUXE VAN"`
}

// Client calls the estimation endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// ApproachTime returns the approach time in minutes.
func (c *Client) ApproachTime(ctx context.Context, p ApproachTimeParams) (float64, error) {
	if err := validate.Struct(operation.EstimationApproachTime, p); err != nil {
		return 0, err
	}
	q := p.Coordinate.Values()
	q.Set("vehicleType", string(p.VehicleType))

	var minutes float64
	if err := c.rest.Get(ctx, "/estimation/approach-time", q, &minutes); err != nil {
		return 0, apierr.Annotate(err, operation.EstimationApproachTime)
	}
	return minutes, nil
}

// Estimate quotes a trip. Failures of type EstimateErrors are narrowed by
// AsEstimateError.
func (c *Client) Estimate(ctx context.Context, p EstimateParams) (*models.Estimation, error) {
	if err := validate.Struct(operation.EstimationEstimate, p); err != nil {
		return nil, err
	}
	var out models.Estimation
	if err := c.rest.Post(ctx, "/estimation/estimate", p, &out); err != nil {
		return nil, apierr.Annotate(err, operation.EstimationEstimate)
	}
	return &out, nil
}
