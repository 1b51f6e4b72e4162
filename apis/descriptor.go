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

// Descriptor is a flat description of a backend error together with its
// resolved transport statuses. It is meant for structured logs and for
// message-bus propagation, where the original error value is not available.
type Descriptor struct {
	// Type is the canonical backend error type, e.g. "TRIP_NOT_FOUND".
	Type string `json:"type"`

	// Operation is the failing endpoint operation, e.g. "trips.cancel".
	// It MAY be empty.
	Operation string `json:"operation,omitempty"`

	// HTTPStatus is the status resolved by the mapper. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC code resolved by the mapper, as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message and Description are the human-oriented texts from the payload.
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
}
