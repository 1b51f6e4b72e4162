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

	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/internal/segmenttrie"
	"dirpx.dev/mysam/operation"
)

// freezeInts copies an int map, keeping nil for empty input.
func freezeInts(src map[errtype.Type]int) map[errtype.Type]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errtype.Type]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeCodes copies a builder-side int map into typed gRPC codes.
func freezeCodes(src map[errtype.Type]int) map[errtype.Type]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errtype.Type]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// buildTries compiles per-type operation rules, converting values with conv.
func buildTries[T any](side string, rules map[errtype.Type][]opRule, conv func(int) T) (map[errtype.Type]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[errtype.Type]*segmenttrie.Trie[T], len(rules))
	for t, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		tr := segmenttrie.New[T]()
		for _, r := range rs {
			p := operation.Normalize(r.prefix)
			if err := tr.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("status: invalid %s operation prefix %q for type %q: %w", side, r.prefix, t, err)
			}
		}
		out[t] = tr
	}
	return out, nil
}
