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

package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	TripWaiting           TripStatus = "WAITING"
	TripNoDriverAvailable TripStatus = "NO_DRIVER_AVAILABLE"
	TripAssigned          TripStatus = "ASSIGNED"
	TripStarted           TripStatus = "STARTED"
	TripCanceled          TripStatus = "CANCELED"
	TripFinished          TripStatus = "FINISHED"

	// Payment states still reported by older trips.
	TripPaymentIssue        TripStatus = "PAYMENT_ISSUE"
	TripSourceAuthorization TripStatus = "SOURCE_AUTHORIZATION"
	TripThreeDSecurePending TripStatus = "THREE_D_SECURE_PENDING"
)

// HasDriver reports whether trips in status s carry a driver.
func (s TripStatus) HasDriver() bool {
	switch s {
	case TripAssigned, TripStarted, TripCanceled, TripFinished:
		return true
	}
	return false
}

// HasEndDate reports whether trips in status s carry an end date.
func (s TripStatus) HasEndDate() bool {
	switch s {
	case TripNoDriverAvailable, TripCanceled, TripFinished:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s TripStatus) Terminal() bool {
	return s == TripCanceled || s == TripFinished || s == TripNoDriverAvailable
}

// Trip is a ride. Driver and EndDate depend on Status: Driver is set from
// ASSIGNED on, EndDate only once the trip ended or found no driver.
type Trip struct {
	ID          int64      `json:"id"`
	Client      Client     `json:"client"`
	FromAddress Address    `json:"fromAddress"`
	ToAddress   Address    `json:"toAddress"`
	StartDate   time.Time  `json:"startDate"`
	Status      TripStatus `json:"status"`
	Driver      *Driver    `json:"driver,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`

	EstimatedPrice       float64  `json:"estimatedPrice"`
	EurosDiscountedPrice *float64 `json:"eurosDiscountedPrice,omitempty"`
}

// UnmarshalJSON decodes a Trip and coerces the start and end dates.
func (t *Trip) UnmarshalJSON(b []byte) error {
	type plain Trip
	aux := struct {
		plain
		StartDate any `json:"startDate"`
		EndDate   any `json:"endDate"`
	}{plain: plain(*t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	out := Trip(aux.plain)
	var err error
	if out.StartDate, err = coerceTime("trip.startDate", aux.StartDate); err != nil {
		return err
	}
	if out.EndDate, err = coerceOptionalTime("trip.endDate", aux.EndDate); err != nil {
		return err
	}
	*t = out
	return nil
}
