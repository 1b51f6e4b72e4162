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

// Package operation defines identifiers for the SDK's endpoint operations.
//
// Where an error type answers "what did the backend reject?", an operation
// answers "which call was rejected?", e.g.:
//
//   - "trips.create"
//   - "clients.register"
//   - "tripdriver.pickup_eta"
//
// The first segment names the endpoint group, the last one the action.
// Classifiers are declared per operation, and endpoint-level classification
// composes every operation sharing a prefix.
//
// An operation is optional on an error: the zero value ("") is allowed and
// means the error was not annotated by an endpoint client.
package operation
