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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

// Mapper is an immutable, concurrency-safe view of status rules. It resolves
// a backend error type, optionally refined by the operation that failed, into
// transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given type and operation.
	// If no operation-specific rule exists, the type-level rule applies.
	HTTPStatus(t errtype.Type, op operation.Operation) int

	// GRPCStatus returns the gRPC code for the given type and operation.
	GRPCStatus(t errtype.Type, op operation.Operation) codes.Code

	// Status resolves both transports in a single call.
	Status(t errtype.Type, op operation.Operation) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(t errtype.Type, op operation.Operation) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // net/http compatible status code.
	GRPC codes.Code // gRPC status code.
}
