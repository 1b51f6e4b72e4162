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
	"strings"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

// Classifier is the narrowing predicate of one operation, or of a group of
// operations composed with Any.
type Classifier struct {
	op  operation.Operation
	set Set
	// parts lists the composed classifiers; nil for a leaf.
	parts []*Classifier
}

// New declares the closed error set of op.
func New(op operation.Operation, types ...errtype.Type) (*Classifier, error) {
	if op == operation.Empty {
		return nil, fmt.Errorf("classify: empty operation")
	}
	if err := operation.Validate(op); err != nil {
		return nil, fmt.Errorf("classify: %w: %q", err, op)
	}
	set, err := NewSet(types...)
	if err != nil {
		return nil, err
	}
	return &Classifier{op: op, set: set}, nil
}

// MustNew is the panic-on-error variant of New, for package-level
// declarations.
func MustNew(op operation.Operation, types ...errtype.Type) *Classifier {
	c, err := New(op, types...)
	if err != nil {
		panic(err)
	}
	return c
}

// Any composes classifiers under the name op. The result accepts an error iff
// at least one part accepts it.
func Any(op operation.Operation, parts ...*Classifier) *Classifier {
	sets := make([]Set, 0, len(parts))
	kept := make([]*Classifier, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		sets = append(sets, p.set)
		kept = append(kept, p)
	}
	return &Classifier{op: op, set: Set{}.Union(sets...), parts: kept}
}

// Operation returns the operation (or group name) of c.
func (c *Classifier) Operation() operation.Operation { return c.op }

// Set returns the declared error set of c.
func (c *Classifier) Set() Set { return c.set }

// Parts returns the classifiers c was composed from, or nil for a leaf.
func (c *Classifier) Parts() []*Classifier {
	if len(c.parts) == 0 {
		return nil
	}
	out := make([]*Classifier, len(c.parts))
	copy(out, c.parts)
	return out
}

// Narrow returns the domain error in err's chain when its type belongs to
// c's set.
func (c *Classifier) Narrow(err error) (*apierr.Error, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := apierr.AsError(err)
	if !ok || !c.set.Has(e.Type) {
		return nil, false
	}
	return e, true
}

// Match reports whether err is a domain error of c's set.
func (c *Classifier) Match(err error) bool {
	_, ok := c.Narrow(err)
	return ok
}

// Explain describes how err was classified, for logs and tests:
//
//	op="trips.cancel" type="TRIP_NOT_FOUND" -> match
//	op="trips" type="TRIP_NOT_FOUND" -> match via "trips.cancel"
//	op="coupons.create" -> not a domain error
func (c *Classifier) Explain(err error) string {
	e, ok := apierr.AsError(err)
	if !ok {
		return fmt.Sprintf("op=%q -> not a domain error", c.op)
	}
	if !c.set.Has(e.Type) {
		return fmt.Sprintf("op=%q type=%q -> no match", c.op, e.Type)
	}
	if len(c.parts) == 0 {
		return fmt.Sprintf("op=%q type=%q -> match", c.op, e.Type)
	}
	var via []string
	for _, p := range c.parts {
		if p.set.Has(e.Type) {
			via = append(via, string(p.op))
		}
	}
	return fmt.Sprintf("op=%q type=%q -> match via %q", c.op, e.Type, strings.Join(via, ","))
}
