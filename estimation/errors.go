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

package estimation

import (
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

var (
	// EstimateErrors are the failures Estimate can report.
	EstimateErrors = classify.MustNew(operation.EstimationEstimate,
		errtype.BadRequestParameter,
		errtype.FlatFeeNotFound,
		errtype.AdministrativeAreaNotSupported,
		errtype.ThirdPartyCallFailed,
		errtype.NoDriverAvailable,
	)

	// Errors is any failure of the estimation endpoint.
	Errors = classify.Any(operation.Estimation, EstimateErrors)
)

// IsEstimateError reports whether err is a failure Estimate can report.
func IsEstimateError(err error) bool { return EstimateErrors.Match(err) }

// AsEstimateError returns the domain error in err's chain when IsEstimateError holds.
func AsEstimateError(err error) (*apierr.Error, bool) { return EstimateErrors.Narrow(err) }

// IsError reports whether err is a failure of any estimation operation.
func IsError(err error) bool { return Errors.Match(err) }
