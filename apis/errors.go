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

package apis

// TypedError is an error classified by a backend error type such as
// "TRIP_NOT_FOUND".
//
// Implementations return the canonical, uppercase type. Adapters treat an
// empty or invalid type as an internal failure.
type TypedError interface {
	error

	// ErrorType returns the machine-readable backend error type.
	ErrorType() string

	// ErrorCode returns the numeric code the backend sent with the type.
	// It is usually, but not always, the HTTP status of the response.
	ErrorCode() int
}

// OperationError is an error that knows which endpoint operation produced it.
type OperationError interface {
	error

	// ErrorOperation returns the dot-separated operation id, e.g.
	// "trips.create", or "" when unknown.
	ErrorOperation() string
}

// DetailedError exposes the free-form extra parameters of a backend error.
type DetailedError interface {
	error

	// Extra returns a copy of the extra parameters, or nil.
	Extra() map[string]any
}
