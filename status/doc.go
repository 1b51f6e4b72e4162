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

// Package status maps MySAM backend error types to transport statuses.
//
// Services that call MySAM and relay its failures to their own clients need
// an HTTP status or a gRPC code for each backend error type. The payload's
// numeric error_code is not reliable for that purpose, so the mapping is
// explicit and overridable.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the type;
//  2. per-type longest-prefix match on the failing operation;
//  3. per-type default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Operation rules are segment-aware: operations are "."-separated, and "*"
// matches exactly one segment. For example:
//
//	status.WithHTTPOperation(errtype.TripNotFound, "trips.cancel", http.StatusGone)
//	status.WithHTTPOperation(errtype.ClientNotFound, "*.create", http.StatusUnprocessableEntity)
//
// # Immutability
//
// All inputs are copied during New. A Mapper can be shared across goroutines.
package status
