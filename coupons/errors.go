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

package coupons

import (
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

var (
	// CreateErrors are the failures Create can report.
	CreateErrors = classify.MustNew(operation.CouponsCreate,
		errtype.CouponAlreadyAssigned,
		errtype.CouponNotFound,
		errtype.CouponNotAcceptable,
	)

	// Errors is any failure of the coupons endpoint.
	Errors = classify.Any(operation.Coupons, CreateErrors)
)

// IsCreateError reports whether err is a failure Create can report.
func IsCreateError(err error) bool { return CreateErrors.Match(err) }

// AsCreateError returns the domain error in err's chain when IsCreateError holds.
func AsCreateError(err error) (*apierr.Error, bool) { return CreateErrors.Narrow(err) }

// IsError reports whether err is a coupon failure.
func IsError(err error) bool { return Errors.Match(err) }
