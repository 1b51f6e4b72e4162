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

package tripdriver

import (
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

var (
	// LocationErrors are the failures DriverLocation can report.
	LocationErrors = classify.MustNew(operation.TripDriverLocation,
		errtype.TripStatusInvalid,
		errtype.TripNotFound,
	)

	// PickUpErrors are the failures EstimateTimeToPickUp can report.
	PickUpErrors = classify.MustNew(operation.TripDriverPickUpETA,
		errtype.NoDriverAssignedToTrip,
		errtype.TripNotFound,
		errtype.ThirdPartyCallFailed,
	)

	// Errors is any failure of the trip driver endpoint.
	Errors = classify.Any(operation.TripDriver, LocationErrors, PickUpErrors)
)

// IsLocationError reports whether err is a failure DriverLocation can report.
func IsLocationError(err error) bool { return LocationErrors.Match(err) }

// AsLocationError returns the domain error in err's chain when IsLocationError holds.
func AsLocationError(err error) (*apierr.Error, bool) { return LocationErrors.Narrow(err) }

// IsPickUpError reports whether err is a failure EstimateTimeToPickUp can report.
func IsPickUpError(err error) bool { return PickUpErrors.Match(err) }

// AsPickUpError returns the domain error in err's chain when IsPickUpError holds.
func AsPickUpError(err error) (*apierr.Error, bool) { return PickUpErrors.Narrow(err) }

// IsError reports whether err is a failure of any trip driver operation.
func IsError(err error) bool { return Errors.Match(err) }
