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

// DriverLocation is the last known position of a trip's driver.
type DriverLocation struct {
	Coordinate
	LocationDate time.Time `json:"locationDate"`
}

// UnmarshalJSON decodes a DriverLocation and coerces the location date.
func (d *DriverLocation) UnmarshalJSON(b []byte) error {
	type plain DriverLocation
	aux := struct {
		plain
		LocationDate any `json:"locationDate"`
	}{plain: plain(*d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t, err := coerceTime("driverLocation.locationDate", aux.LocationDate)
	if err != nil {
		return err
	}
	*d = DriverLocation(aux.plain)
	d.LocationDate = t
	return nil
}

// DriverArrivalTimeEstimate is the driver's distance and time to the pick-up
// point. Distance is in meters and Duration in seconds.
type DriverArrivalTimeEstimate struct {
	Distance       float64        `json:"distance"`
	DriverLocation DriverLocation `json:"driverLocation"`
	Duration       float64        `json:"duration"`
	TripID         int64          `json:"tripId"`
	TripStatus     TripStatus     `json:"tripStatus"`
}
