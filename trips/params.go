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

package trips

import (
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
)

// Payment selects how the trip is paid: PayInApp, PayDeferred or PayOnBoard.
type Payment interface{ paymentMethod() string }

// PayInApp charges the card registered in the app.
type PayInApp struct{}

// PayDeferred bills the account later.
type PayDeferred struct{}

// PayOnBoard pays the driver directly; Cash tells whether it is in cash.
type PayOnBoard struct{ Cash bool }

func (PayInApp) paymentMethod() string    { return "IN_APP" }
func (PayDeferred) paymentMethod() string { return "DEFERRED" }
func (PayOnBoard) paymentMethod() string  { return "ON_BOARD" }

// Vehicle is a vehicle type with a passenger count legal for it. Build it
// with NewVehicle.
type Vehicle struct {
	typ        models.VehicleType
	passengers int
}

// Seat rules per vehicle class.
type (
	sedanSeats struct {
		N int `json:"nbPassengers" validate:"min=1,max=4"`
	}
	vanSeats struct {
		N int `json:"nbPassengers" validate:"min=1,max=8"`
	}
)

// NewVehicle checks n against the seats of t: 1 to 4 for CAR and LUXE, 1 to
// 8 for VAN.
func NewVehicle(t models.VehicleType, n int) (Vehicle, error) {
	var seats any
	switch t {
	case models.VehicleCar, models.VehicleLuxe:
		seats = sedanSeats{N: n}
	case models.VehicleVan:
		seats = vanSeats{N: n}
	default:
		return Vehicle{}, apierr.NewParamError(operation.TripsCreate, "vehicleType", "must be one of [CAR LUXE VAN]")
	}
	if err := validate.Struct(operation.TripsCreate, seats); err != nil {
		return Vehicle{}, err
	}
	return Vehicle{typ: t, passengers: n}, nil
}

// Type returns the vehicle type.
func (v Vehicle) Type() models.VehicleType { return v.typ }

// Passengers returns the number of passengers.
func (v Vehicle) Passengers() int { return v.passengers }

// IsZero reports whether v was not built by NewVehicle.
func (v Vehicle) IsZero() bool { return v.typ == "" }

// Timing selects when the trip starts: Immediate or Reservation.
type Timing interface{ tripType() string }

// Immediate asks for a driver now.
type Immediate struct{}

// Reservation books a trip for StartDate.
type Reservation struct {
	StartDate time.Time `json:"startDate" validate:"required"`
}

func (Immediate) tripType() string   { return "IMMEDIATE" }
func (Reservation) tripType() string { return "RESERVATION" }

// Assignment selects the driver: AutoAssign or AssignTo.
type Assignment interface{ autoAssign() bool }

// AutoAssign lets dispatch pick the driver.
type AutoAssign struct{}

// AssignTo forces a given driver.
type AssignTo struct {
	DriverID string `json:"driverId" validate:"required"`
}

func (AutoAssign) autoAssign() bool { return true }
func (AssignTo) autoAssign() bool   { return false }

// RideOptions are the passenger's special requests.
type RideOptions struct {
	Animals     bool
	BoosterSeat bool
	CarSeat     bool
	Cumbersome  bool
	Sign        bool
}

// MarshalJSON writes the backend encoding: flags are the string "true",
// except sign which is a boolean. Unset flags are omitted.
func (o RideOptions) MarshalJSON() ([]byte, error) {
	flag := func(b bool) string {
		if b {
			return "true"
		}
		return ""
	}
	var sign *bool
	if o.Sign {
		sign = &o.Sign
	}
	return json.Marshal(struct {
		Animals     string `json:"animals,omitempty"`
		BoosterSeat string `json:"boosterSeat,omitempty"`
		CarSeat     string `json:"carSeat,omitempty"`
		Cumbersome  string `json:"cumbersome,omitempty"`
		Sign        *bool  `json:"sign,omitempty"`
	}{flag(o.Animals), flag(o.BoosterSeat), flag(o.CarSeat), flag(o.Cumbersome), sign})
}

// Extras are the optional details of a trip. Zero values are not sent.
// Prices are in cents.
type Extras struct {
	TrainNumber              string       `json:"trainNumber,omitempty"`
	ZDForcedPrice            *int64       `json:"zdForcedPrice,omitempty" validate:"omitempty,gte=0"`
	ShouldSendInEmailSummary *bool        `json:"shouldSendInEmailSummary,omitempty"`
	StartingFromAirport      *bool        `json:"startingFromAirport,omitempty"`
	Options                  *RideOptions `json:"options,omitempty" validate:"-"`
	EstimationID             *int64       `json:"estimationId,omitempty"`
	ExternalReference        string       `json:"externalReference,omitempty"`
	FlatFeeMatrixID          *int64       `json:"flatFeeMatrixId,omitempty"`
	Comment                  string       `json:"comment,omitempty"`
	CreatedByUserID          string       `json:"createdByAlfredUserId,omitempty"`
	FlightNumber             string       `json:"flightNumber,omitempty"`
}

// CreateParams describes a trip to book. Each of Payment, Vehicle, Timing
// and Assignment must hold exactly one variant.
type CreateParams struct {
	// ClientID may be empty for trips not attached to a client.
	ClientID    string         `json:"clientId"`
	FromAddress models.Address `json:"fromAddress" validate:"required"`
	ToAddress   models.Address `json:"toAddress" validate:"required"`

	Payment    Payment    `json:"-" validate:"-"`
	Vehicle    Vehicle    `json:"-" validate:"-"`
	Timing     Timing     `json:"-" validate:"-"`
	Assignment Assignment `json:"-" validate:"-"`

	Extras Extras `json:"-"`
}

// Validate reports every illegal field as one *apierr.ParamError. Variants
// must be passed by value.
func (p CreateParams) Validate() error {
	fields := map[string]string{}
	merge := func(err error) error {
		if err == nil {
			return nil
		}
		var pe *apierr.ParamError
		if !errors.As(err, &pe) {
			return err
		}
		for k, v := range pe.Fields {
			fields[k] = v
		}
		return nil
	}
	variant := func(field string, v any) {
		if v == nil {
			fields[field] = "is required"
		} else {
			fields[field] = fmt.Sprintf("unsupported variant %T", v)
		}
	}

	if err := merge(validate.Struct(operation.TripsCreate, p)); err != nil {
		return err
	}

	switch p.Payment.(type) {
	case PayInApp, PayDeferred, PayOnBoard:
	default:
		variant("paymentMethod", p.Payment)
	}

	if p.Vehicle.IsZero() {
		fields["vehicleType"] = "is required"
	} else if err := merge(recheck(p.Vehicle)); err != nil {
		return err
	}

	switch t := p.Timing.(type) {
	case Immediate:
	case Reservation:
		if err := merge(validate.Struct(operation.TripsCreate, t)); err != nil {
			return err
		}
	default:
		variant("type", p.Timing)
	}

	switch a := p.Assignment.(type) {
	case AutoAssign:
	case AssignTo:
		if err := merge(validate.Struct(operation.TripsCreate, a)); err != nil {
			return err
		}
	default:
		variant("autoAssignToDriver", p.Assignment)
	}

	if len(fields) == 0 {
		return nil
	}
	return &apierr.ParamError{Operation: operation.TripsCreate, Fields: fields}
}

func recheck(v Vehicle) error {
	_, err := NewVehicle(v.typ, v.passengers)
	return err
}

// createBody is the flattened wire form of CreateParams.
type createBody struct {
	ClientID    string         `json:"clientId,omitempty"`
	FromAddress models.Address `json:"fromAddress"`
	ToAddress   models.Address `json:"toAddress"`

	PaymentMethod    string `json:"paymentMethod"`
	WillBePaidInCash *bool  `json:"willBePaidInCash,omitempty"`

	VehicleType  models.VehicleType `json:"vehicleType"`
	NbPassengers int                `json:"nbPassengers"`

	Type      string     `json:"type"`
	StartDate *time.Time `json:"startDate,omitempty"`

	AutoAssignToDriver bool   `json:"autoAssignToDriver"`
	DriverID           string `json:"driverId,omitempty"`

	Extras
}

// MarshalJSON flattens the variants into the backend's discriminated fields.
func (p CreateParams) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := createBody{
		ClientID:     p.ClientID,
		FromAddress:  p.FromAddress,
		ToAddress:    p.ToAddress,
		VehicleType:  p.Vehicle.typ,
		NbPassengers: p.Vehicle.passengers,
		Extras:       p.Extras,
	}

	b.PaymentMethod = p.Payment.paymentMethod()
	if v, ok := p.Payment.(PayOnBoard); ok {
		b.WillBePaidInCash = &v.Cash
	}

	b.Type = p.Timing.tripType()
	if v, ok := p.Timing.(Reservation); ok {
		b.StartDate = &v.StartDate
	}

	b.AutoAssignToDriver = p.Assignment.autoAssign()
	if v, ok := p.Assignment.(AssignTo); ok {
		b.DriverID = v.DriverID
	}

	return json.Marshal(b)
}
