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

package errtype

import "sort"

// Client account error types.
const (
	// ClientNotFound indicates that the referenced client id does not exist.
	// Reported by client update, trip creation and trip summaries.
	ClientNotFound Type = "CLIENT_NOT_FOUND"

	// EmailAlreadyExists indicates that another account already uses the
	// requested email address.
	EmailAlreadyExists Type = "EMAIL_ALREADY_EXISTS"

	// ProfileUpdateFailed indicates that the backend refused to persist a
	// client profile change.
	ProfileUpdateFailed Type = "PROFILE_UPDATE_FAILED"

	// ReferralCodeNotFound indicates that the referral code given at
	// registration is unknown.
	ReferralCodeNotFound Type = "REFERRAL_CODE_NOT_FOUND"
)

// Coupon error types.
const (
	CouponAlreadyAssigned Type = "COUPON_ALREADY_ASSIGNED"
	CouponNotFound        Type = "COUPON_NOT_FOUND"
	CouponNotAcceptable   Type = "COUPON_NOT_ACCEPTABLE"
)

// Estimation and pricing error types.
const (
	// BadRequestParameter indicates that the backend rejected one of the
	// estimation inputs.
	BadRequestParameter Type = "BAD_REQUEST_PARAMETER"

	// FlatFeeNotFound indicates that the referenced flat fee (or flat fee
	// matrix) does not exist.
	FlatFeeNotFound Type = "FLAT_FEE_NOT_FOUND"

	// AdministrativeAreaNotSupported indicates that the pick-up or drop-off
	// point is outside every area the tenant operates in.
	AdministrativeAreaNotSupported Type = "ADMINISTRATIVE_AREA_NOT_SUPPORTED"

	// AdministrativeAreaNotFound indicates that no administrative area could
	// be resolved for the trip addresses.
	AdministrativeAreaNotFound Type = "ADMINISTRATIVE_AREA_NOT_FOUND"

	// ThirdPartyCallFailed indicates that a dependency of the backend
	// (routing, geocoding) failed while serving the call.
	ThirdPartyCallFailed Type = "THIRD_PARTY_CALL_FAILED"

	// NoDriverAvailable indicates that no driver can serve the request.
	NoDriverAvailable Type = "NO_DRIVER_AVAILABLE"
)

// Trip lifecycle error types.
const (
	TripNotFound      Type = "TRIP_NOT_FOUND"
	TripStatusInvalid Type = "TRIP_STATUS_INVALID"

	// TripUpdateForbidden indicates that the trip is in a state that can no
	// longer be changed (e.g. already finished).
	TripUpdateForbidden Type = "TRIP_UPDATE_FORBIDDEN"

	// TropNotFound is the literal spelling the backend uses for a missing
	// trip on the cancel and discount routes. It is kept verbatim next to
	// TripNotFound; the two are not interchangeable.
	TropNotFound Type = "TROP_NOT_FOUND"

	PartnerDiscountNotApplicable Type = "PARTNER_DISCOUNT_NOT_APPLICABLE"

	TripEstimationEmpty              Type = "TRIP_ESTIMATION_EMPTY"
	TripReservationTooEarly          Type = "TRIP_RESERVATION_TOO_EARLY"
	ImmediateTripAlreadyExists       Type = "IMMEDIATE_TRIP_ALREADY_EXISTS"
	TripNumberOfPassengersOutOfRange Type = "TRIP_NUMBER_OF_PASSENGERS_OUT_OF_RANGE"
	TripMustProvideExternalReference Type = "TRIP_MUST_PROVIDE_EXTERNAL_REFERENCE"
	ImmediateTripsNotAllowed         Type = "IMMEDIATE_TRIPS_NOT_ALLOWED"
)

// Driver error types.
const (
	DriverNotFound         Type = "DRIVER_NOT_FOUND"
	NoDriverAssignedToTrip Type = "NO_DRIVER_ASSIGNED_TO_TRIP"
)

var catalogue = map[Type]struct{}{
	ClientNotFound:                   {},
	EmailAlreadyExists:               {},
	ProfileUpdateFailed:              {},
	ReferralCodeNotFound:             {},
	CouponAlreadyAssigned:            {},
	CouponNotFound:                   {},
	CouponNotAcceptable:              {},
	BadRequestParameter:              {},
	FlatFeeNotFound:                  {},
	AdministrativeAreaNotSupported:   {},
	AdministrativeAreaNotFound:       {},
	ThirdPartyCallFailed:             {},
	NoDriverAvailable:                {},
	TripNotFound:                     {},
	TripStatusInvalid:                {},
	TripUpdateForbidden:              {},
	TropNotFound:                     {},
	PartnerDiscountNotApplicable:     {},
	TripEstimationEmpty:              {},
	TripReservationTooEarly:          {},
	ImmediateTripAlreadyExists:       {},
	TripNumberOfPassengersOutOfRange: {},
	TripMustProvideExternalReference: {},
	ImmediateTripsNotAllowed:         {},
	DriverNotFound:                   {},
	NoDriverAssignedToTrip:           {},
}

// All returns every error type known to the SDK, sorted. The returned slice
// is a fresh copy.
func All() []Type {
	out := make([]Type, 0, len(catalogue))
	for t := range catalogue {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
