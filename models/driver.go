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

// Bank holds a driver's payout account.
type Bank struct {
	ID      int64     `json:"id"`
	Active  bool      `json:"active"`
	BIC     string    `json:"bic"`
	Created time.Time `json:"created"`
	IBAN    string    `json:"iban"`
}

// UnmarshalJSON decodes a Bank and coerces the creation date.
func (b *Bank) UnmarshalJSON(data []byte) error {
	type plain Bank
	aux := struct {
		plain
		Created any `json:"created"`
	}{plain: plain(*b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t, err := coerceTime("bank.created", aux.Created)
	if err != nil {
		return err
	}
	*b = Bank(aux.plain)
	b.Created = t
	return nil
}

// DriverDetails describes the driver's vehicle.
type DriverDetails struct {
	VehicleBrand string      `json:"vehicleBrand"`
	VehicleColor string      `json:"vehicleColor"`
	VehicleModel string      `json:"vehicleModel"`
	VehicleType  VehicleType `json:"vehicleType"`
	VehicleYear  int         `json:"vehicleYear"`
}

// Driver is the driver assigned to a trip.
type Driver struct {
	ID                int64         `json:"id"`
	Email             string        `json:"email"`
	Enabled           bool          `json:"enabled"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	HighQuality       bool          `json:"highQuality"`
	MobilePhoneNumber string        `json:"mobilePhoneNumber"`
	UserID            int64         `json:"userID"`
	DriverDetails     DriverDetails `json:"driverDetails"`
}
