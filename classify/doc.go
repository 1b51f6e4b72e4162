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

// Package classify narrows generic MySAM domain errors into operation-level
// error families.
//
// Every endpoint operation documents the closed set of backend error types it
// can produce. A Classifier pairs an operation with that set and answers one
// question: "is this error one of yours?"
//
//	var CancelErrors = classify.MustNew(operation.TripsCancel,
//	    errtype.TripUpdateForbidden,
//	    errtype.TripNotFound,
//	)
//
//	if e, ok := CancelErrors.Narrow(err); ok {
//	    switch e.Type { ... }
//	}
//
// # Guarantees
//
//   - A classifier never accepts a type outside its declared set, including
//     types that belong to sibling operations.
//   - A classifier never accepts anything that is not a domain error
//     (transport failures, parameter errors, nil).
//   - Sets are frozen at construction; classifiers are safe for concurrent use.
//
// # Composition
//
// Any composes classifiers by union, which is the logical OR of their
// predicates. A Registry indexes classifiers by operation id and composes
// everything below a prefix, so Registry.Endpoint("trips") covers every
// registered trips.* operation and nothing else.
package classify
