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

package status

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/errtype"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for t.
func WithHTTPDefault(t errtype.Type, http int) Option {
	return func(b *builder) { b.httpDefaults[t] = http }
}

// WithGRPCDefault sets or replaces the default gRPC code for t.
func WithGRPCDefault(t errtype.Type, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[t] = grpc }
}

// WithHTTPOverride forces the HTTP status of t regardless of the operation.
func WithHTTPOverride(t errtype.Type, http int) Option {
	return func(b *builder) { b.httpOverride[t] = http }
}

// WithGRPCOverride forces the gRPC code of t regardless of the operation.
func WithGRPCOverride(t errtype.Type, grpc int) Option {
	return func(b *builder) { b.grpcOverride[t] = grpc }
}

// WithHTTPOperation adds an operation-prefix rule for t. The most specific
// prefix wins; "*" matches one segment.
func WithHTTPOperation(t errtype.Type, prefix string, http int) Option {
	return func(b *builder) { b.httpOps[t] = append(b.httpOps[t], opRule{prefix, http}) }
}

// WithGRPCOperation adds an operation-prefix rule for t on the gRPC side.
func WithGRPCOperation(t errtype.Type, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcOps[t] = append(b.grpcOps[t], opRule{prefix, grpc}) }
}

// WithFallback replaces the statuses used for types without any rule.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
