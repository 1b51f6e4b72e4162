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

package status

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/errtype"
)

// defaultHTTP maps every catalogued backend error type to an HTTP status.
var defaultHTTP = map[errtype.Type]int{
	// Missing resources.
	errtype.ClientNotFound:             http.StatusNotFound,
	errtype.ReferralCodeNotFound:       http.StatusNotFound,
	errtype.CouponNotFound:             http.StatusNotFound,
	errtype.FlatFeeNotFound:            http.StatusNotFound,
	errtype.AdministrativeAreaNotFound: http.StatusNotFound,
	errtype.TripNotFound:               http.StatusNotFound,
	errtype.TropNotFound:               http.StatusNotFound,
	errtype.DriverNotFound:             http.StatusNotFound,

	// Conflicts with existing state.
	errtype.EmailAlreadyExists:         http.StatusConflict,
	errtype.CouponAlreadyAssigned:      http.StatusConflict,
	errtype.ImmediateTripAlreadyExists: http.StatusConflict,
	errtype.TripStatusInvalid:          http.StatusConflict,
	errtype.TripUpdateForbidden:        http.StatusConflict,
	errtype.NoDriverAssignedToTrip:     http.StatusConflict,

	// Malformed or out-of-range input.
	errtype.BadRequestParameter:              http.StatusBadRequest,
	errtype.TripEstimationEmpty:              http.StatusBadRequest,
	errtype.TripNumberOfPassengersOutOfRange: http.StatusBadRequest,
	errtype.TripMustProvideExternalReference: http.StatusBadRequest,

	// Well-formed input the business rules refuse.
	errtype.ProfileUpdateFailed:            http.StatusUnprocessableEntity,
	errtype.CouponNotAcceptable:            http.StatusUnprocessableEntity,
	errtype.AdministrativeAreaNotSupported: http.StatusUnprocessableEntity,
	errtype.PartnerDiscountNotApplicable:   http.StatusUnprocessableEntity,
	errtype.TripReservationTooEarly:        http.StatusUnprocessableEntity,
	errtype.ImmediateTripsNotAllowed:       http.StatusForbidden,

	// Capacity and dependencies.
	errtype.NoDriverAvailable:    http.StatusServiceUnavailable,
	errtype.ThirdPartyCallFailed: http.StatusBadGateway,
}

// defaultGRPC maps every catalogued backend error type to a gRPC code.
var defaultGRPC = map[errtype.Type]codes.Code{
	errtype.ClientNotFound:             codes.NotFound,
	errtype.ReferralCodeNotFound:       codes.NotFound,
	errtype.CouponNotFound:             codes.NotFound,
	errtype.FlatFeeNotFound:            codes.NotFound,
	errtype.AdministrativeAreaNotFound: codes.NotFound,
	errtype.TripNotFound:               codes.NotFound,
	errtype.TropNotFound:               codes.NotFound,
	errtype.DriverNotFound:             codes.NotFound,

	errtype.EmailAlreadyExists:         codes.AlreadyExists,
	errtype.CouponAlreadyAssigned:      codes.AlreadyExists,
	errtype.ImmediateTripAlreadyExists: codes.AlreadyExists,
	errtype.TripStatusInvalid:          codes.FailedPrecondition,
	errtype.TripUpdateForbidden:        codes.FailedPrecondition,
	errtype.NoDriverAssignedToTrip:     codes.FailedPrecondition,

	errtype.BadRequestParameter:              codes.InvalidArgument,
	errtype.TripEstimationEmpty:              codes.InvalidArgument,
	errtype.TripNumberOfPassengersOutOfRange: codes.OutOfRange,
	errtype.TripMustProvideExternalReference: codes.InvalidArgument,

	errtype.ProfileUpdateFailed:            codes.FailedPrecondition,
	errtype.CouponNotAcceptable:            codes.FailedPrecondition,
	errtype.AdministrativeAreaNotSupported: codes.FailedPrecondition,
	errtype.PartnerDiscountNotApplicable:   codes.FailedPrecondition,
	errtype.TripReservationTooEarly:        codes.InvalidArgument,
	errtype.ImmediateTripsNotAllowed:       codes.PermissionDenied,

	errtype.NoDriverAvailable:    codes.ResourceExhausted,
	errtype.ThirdPartyCallFailed: codes.Unavailable,
}
