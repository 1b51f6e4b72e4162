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

package clients

import (
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/classify"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

var (
	// UpdateErrors are the failures Update can report.
	UpdateErrors = classify.MustNew(operation.ClientsUpdate,
		errtype.ProfileUpdateFailed,
		errtype.ClientNotFound,
		errtype.EmailAlreadyExists,
	)

	// RegisterErrors are the failures Register can report.
	RegisterErrors = classify.MustNew(operation.ClientsRegister,
		errtype.ReferralCodeNotFound,
		errtype.EmailAlreadyExists,
	)

	// Errors is any failure of the clients endpoint.
	Errors = classify.Any(operation.Clients, UpdateErrors, RegisterErrors)
)

// IsUpdateError reports whether err is a failure Update can report.
func IsUpdateError(err error) bool { return UpdateErrors.Match(err) }

// AsUpdateError returns the domain error in err's chain when IsUpdateError holds.
func AsUpdateError(err error) (*apierr.Error, bool) { return UpdateErrors.Narrow(err) }

// IsRegisterError reports whether err is a failure Register can report.
func IsRegisterError(err error) bool { return RegisterErrors.Match(err) }

// AsRegisterError returns the domain error in err's chain when IsRegisterError holds.
func AsRegisterError(err error) (*apierr.Error, bool) { return RegisterErrors.Narrow(err) }

// IsError reports whether err is a failure of any clients operation.
func IsError(err error) bool { return Errors.Match(err) }
