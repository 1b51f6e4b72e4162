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

// Package apierr holds the error model of the MySAM SDK.
//
// Every business-rule failure reported by the backend surfaces as a single
// concrete type, *Error, built from the structured payload the backend sends
// with non-2xx responses:
//
//	{
//	  "error": "Not Found",
//	  "error_type": "TRIP_NOT_FOUND",
//	  "error_code": 404,
//	  "error_description": "trip 42 does not exist",
//	  "extraParameters": {"tripId": 42}
//	}
//
// The four scalar fields are required; error_type is kept as sent. Failures
// without that payload (timeouts, refused connections, 502s from a
// proxy) are never converted: they reach the caller as transport errors.
//
// Invalid request shapes are rejected before any network call with a
// *ParamError wrapping ErrInvalidParams.
package apierr
