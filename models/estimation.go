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

// Estimation is a price and duration quote for a prospective trip.
type Estimation struct {
	ID               int64       `json:"id,omitempty"`
	Created          time.Time   `json:"created"`
	Distance         float64     `json:"distance"`
	Duration         float64     `json:"duration"`
	IsPriceIncreased bool        `json:"isPriceIncreased"`
	Price            float64     `json:"price"`
	StartDate        time.Time   `json:"startDate"`
	TripType         string      `json:"tripType"`
	VehicleType      VehicleType `json:"vehicleType"`
}

// UnmarshalJSON decodes a Estimation and coerces both dates.
func (e *Estimation) UnmarshalJSON(b []byte) error {
	type plain Estimation
	aux := struct {
		plain
		Created   any `json:"created"`
		StartDate any `json:"startDate"`
	}{plain: plain(*e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	out := Estimation(aux.plain)
	var err error
	if out.Created, err = coerceTime("estimation.created", aux.Created); err != nil {
		return err
	}
	if out.StartDate, err = coerceTime("estimation.startDate", aux.StartDate); err != nil {
		return err
	}
	*e = out
	return nil
}
