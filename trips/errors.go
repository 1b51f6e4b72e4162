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
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

var (
	// CancelErrors are the failures Cancel can report. TROP_NOT_FOUND is the
	// backend's own spelling and is kept next to TRIP_NOT_FOUND.
	CancelErrors = classify.MustNew(operation.TripsCancel,
		errtype.TripUpdateForbidden,
		errtype.TripNotFound,
		errtype.TropNotFound,
	)

	// DiscountErrors are the failures CreateDiscount can report.
	DiscountErrors = classify.MustNew(operation.TripsDiscount,
		errtype.PartnerDiscountNotApplicable,
		errtype.TripNotFound,
		errtype.TropNotFound,
	)

	// CreateErrors are the failures Create can report.
	CreateErrors = classify.MustNew(operation.TripsCreate,
		errtype.TripEstimationEmpty,
		errtype.TripStatusInvalid,
		errtype.TripReservationTooEarly,
		errtype.ImmediateTripAlreadyExists,
		errtype.ClientNotFound,
		errtype.DriverNotFound,
		errtype.FlatFeeNotFound,
		errtype.AdministrativeAreaNotFound,
		errtype.TripNumberOfPassengersOutOfRange,
		errtype.TripMustProvideExternalReference,
		errtype.ImmediateTripsNotAllowed,
	)

	// SearchErrors are the failures Search can report.
	SearchErrors = classify.MustNew(operation.TripsSummary,
		errtype.ClientNotFound,
	)

	// Errors is any failure of the trips endpoint.
	Errors = classify.Any(operation.Trips, CancelErrors, DiscountErrors, CreateErrors, SearchErrors)
)

// IsCancelError reports whether err is a failure Cancel can report.
func IsCancelError(err error) bool { return CancelErrors.Match(err) }

// AsCancelError returns the domain error in err's chain when IsCancelError holds.
func AsCancelError(err error) (*apierr.Error, bool) { return CancelErrors.Narrow(err) }

// IsDiscountError reports whether err is a failure CreateDiscount can report.
func IsDiscountError(err error) bool { return DiscountErrors.Match(err) }

// AsDiscountError returns the domain error in err's chain when IsDiscountError holds.
func AsDiscountError(err error) (*apierr.Error, bool) { return DiscountErrors.Narrow(err) }

// IsCreateError reports whether err is a failure Create can report.
func IsCreateError(err error) bool { return CreateErrors.Match(err) }

// AsCreateError returns the domain error in err's chain when IsCreateError holds.
func AsCreateError(err error) (*apierr.Error, bool) { return CreateErrors.Narrow(err) }

// IsSearchError reports whether err is a failure Search can report.
func IsSearchError(err error) bool { return SearchErrors.Match(err) }

// AsSearchError returns the domain error in err's chain when IsSearchError holds.
func AsSearchError(err error) (*apierr.Error, bool) { return SearchErrors.Narrow(err) }

// IsError reports whether err is a failure of any trips operation.
func IsError(err error) bool { return Errors.Match(err) }
