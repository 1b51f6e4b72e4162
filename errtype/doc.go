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

// Package errtype provides parsing, normalization and validation for the
// error types reported by the MySAM backend.
//
// An error type is the machine-readable discriminator carried in the
// "error_type" field of every backend error payload, such as
// "TRIP_NOT_FOUND" or "COUPON_ALREADY_ASSIGNED". Types declared in this
// package and in classifiers are uppercase and underscore-separated; Validate
// enforces that at declaration time. Types received from the backend are kept
// verbatim and never rewritten, whatever their form.
//
// IMPORTANT: the empty type ("") is NOT a valid error type. A backend payload
// without a type is never turned into a domain error.
//
// The package also ships the closed catalogue of types the SDK knows about
// (see All). The backend may report types outside the catalogue, or in a
// non-canonical form; those still produce a domain error, they just never
// match an operation classifier.
package errtype
