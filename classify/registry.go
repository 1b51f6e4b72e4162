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

	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/internal/segmenttrie"
	"dirpx.dev/mysam/operation"
)

// Registry is an immutable index of leaf classifiers by operation id.
type Registry struct {
	trie *segmenttrie.Trie[*Classifier]
	byOp map[operation.Operation]*Classifier
}

// NewRegistry indexes cs. Each classifier must be a leaf with a distinct
// operation.
func NewRegistry(cs ...*Classifier) (*Registry, error) {
	r := &Registry{
		trie: segmenttrie.New[*Classifier](),
		byOp: make(map[operation.Operation]*Classifier, len(cs)),
	}
	for _, c := range cs {
		if c == nil {
			continue
		}
		if len(c.parts) > 0 {
			return nil, fmt.Errorf("classify: %q is composed; register its parts", c.op)
		}
		if _, dup := r.byOp[c.op]; dup {
			return nil, fmt.Errorf("classify: duplicate operation %q", c.op)
		}
		if err := r.trie.Insert(string(c.op), c); err != nil {
			return nil, fmt.Errorf("classify: cannot index %q: %w", c.op, err)
		}
		r.byOp[c.op] = c
	}
	return r, nil
}

// Lookup returns the classifier registered for op.
func (r *Registry) Lookup(op operation.Operation) (*Classifier, bool) {
	c, ok := r.byOp[op]
	return c, ok
}

// Endpoint composes every classifier registered at or below prefix. An
// unknown prefix yields a classifier with an empty set, which matches nothing.
func (r *Registry) Endpoint(prefix string) *Classifier {
	return Any(operation.Operation(prefix), r.trie.Collect(prefix)...)
}

// Operations returns the registered operations whose set contains t, in
// operation order.
func (r *Registry) Operations(t errtype.Type) []operation.Operation {
	var out []operation.Operation
	for _, c := range r.trie.Collect("") {
		if c.set.Has(t) {
			out = append(out, c.op)
		}
	}
	return out
}
