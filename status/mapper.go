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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/apis"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/internal/segmenttrie"
	"dirpx.dev/mysam/operation"
)

// New builds an immutable Mapper seeded with the library defaults and then
// adjusted by opts. It fails only when an operation rule has an invalid
// prefix.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Kept as int in the builder; converted back when freezing.
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries("HTTP", b.httpOps, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries("gRPC", b.grpcOps, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freezeInts(b.httpDefaults),
		grpcDefault:  freezeCodes(b.grpcDefaults),
		httpOverride: freezeInts(b.httpOverride),
		grpcOverride: freezeCodes(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is New that panics on error. Intended for package-level vars.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default is the Mapper with library defaults only.
var Default = MustNew()

// Resolve maps err through m when err is (or wraps) a MySAM domain error.
// The operation annotated on the error takes part in the lookup.
func Resolve(m apis.Mapper, err error) (apis.Status, bool) {
	e, ok := apierr.AsError(err)
	if !ok {
		return apis.Status{}, false
	}
	if m == nil {
		m = Default
	}
	return m.Status(e.Type, e.Operation), true
}

type mapper struct {
	httpDefault map[errtype.Type]int
	grpcDefault map[errtype.Type]codes.Code

	// Overrides win over everything else for their type.
	httpOverride map[errtype.Type]int
	grpcOverride map[errtype.Type]codes.Code

	// Per-type tries keyed by operation prefix.
	httpTrie map[errtype.Type]*segmenttrie.Trie[int]
	grpcTrie map[errtype.Type]*segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves the HTTP status for t raised by op.
func (m *mapper) HTTPStatus(t errtype.Type, op operation.Operation) int {
	v, _, _ := m.resolveHTTP(t, op)
	return v
}

// GRPCStatus resolves the gRPC code for t raised by op.
func (m *mapper) GRPCStatus(t errtype.Type, op operation.Operation) codes.Code {
	v, _, _ := m.resolveGRPC(t, op)
	return v
}

// Status resolves both projections at once.
func (m *mapper) Status(t errtype.Type, op operation.Operation) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(t, op),
		GRPC: m.GRPCStatus(t, op),
	}
}

// Explain reports which rule produced each status. The format is stable and
// covered by a golden test.
func (m *mapper) Explain(t errtype.Type, op operation.Operation) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "type=%q operation=%q\n", t, op)

	v, src, pat := m.resolveHTTP(t, op)
	if pat != "" {
		_, _ = fmt.Fprintf(&b, "http: source=%s pattern=%q -> %d\n", src, pat, v)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)
	}

	g, src, pat := m.resolveGRPC(t, op)
	if pat != "" {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s pattern=%q -> %s(%d)", src, pat, strings.ToUpper(g.String()), int(g))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), int(g))
	}
	return b.String()
}

// resolveHTTP returns the status, its source and the matched pattern if any.
func (m *mapper) resolveHTTP(t errtype.Type, op operation.Operation) (int, string, string) {
	if v, ok := m.httpOverride[t]; ok {
		return v, "override", ""
	}
	if idx := m.httpTrie[t]; idx != nil {
		if v, ok, pat := idx.MatchWithPattern(string(op)); ok {
			return v, "operation", pat
		}
	}
	if v, ok := m.httpDefault[t]; ok {
		return v, "default", ""
	}
	return m.fallbackHTTP, "fallback", ""
}

func (m *mapper) resolveGRPC(t errtype.Type, op operation.Operation) (codes.Code, string, string) {
	if v, ok := m.grpcOverride[t]; ok {
		return v, "override", ""
	}
	if idx := m.grpcTrie[t]; idx != nil {
		if v, ok, pat := idx.MatchWithPattern(string(op)); ok {
			return v, "operation", pat
		}
	}
	if v, ok := m.grpcDefault[t]; ok {
		return v, "default", ""
	}
	return m.fallbackGRPC, "fallback", ""
}
