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

package classify

import (
	"fmt"
	"sort"

	"dirpx.dev/mysam/errtype"
)

// Set is an immutable, closed set of backend error types. The zero value is
// the empty set.
type Set struct {
	m map[errtype.Type]struct{}
}

// NewSet builds a Set from types. Every type must be canonical; duplicates
// are folded.
func NewSet(types ...errtype.Type) (Set, error) {
	m := make(map[errtype.Type]struct{}, len(types))
	for _, t := range types {
		if err := errtype.Validate(t); err != nil {
			return Set{}, fmt.Errorf("classify: %w: %q", err, t)
		}
		m[t] = struct{}{}
	}
	return Set{m: m}, nil
}

// Has reports whether t is a member of s.
func (s Set) Has(t errtype.Type) bool {
	_, ok := s.m[t]
	return ok
}

// Len returns the number of types in s.
func (s Set) Len() int { return len(s.m) }

// Types returns the members of s, sorted. The slice is a fresh copy.
func (s Set) Types() []errtype.Type {
	out := make([]errtype.Type, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union returns a new set holding the members of s and every other set.
func (s Set) Union(others ...Set) Set {
	n := len(s.m)
	for _, o := range others {
		n += len(o.m)
	}
	m := make(map[errtype.Type]struct{}, n)
	for t := range s.m {
		m[t] = struct{}{}
	}
	for _, o := range others {
		for t := range o.m {
			m[t] = struct{}{}
		}
	}
	return Set{m: m}
}
