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

// Package segmenttrie indexes values by dot-separated operation ids.
//
// It answers two questions:
//
//   - which rule is the most specific one for "trips.cancel"? (Match)
//   - which values live at or below "trips"? (Collect)
package segmenttrie

import (
	"errors"
	"sort"
	"strings"
)

// Trie is a segment-aware prefix index. Each node represents one segment;
// the wildcard "*" matches exactly one segment.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the dotted key (with "*" if used) of a node holding a value.
	pattern string
}

// ErrInvalidKey is returned when inserting a key that is empty, has empty
// segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidKey = errors.New("segmenttrie: invalid key")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with key, replacing any previous value.
//
//	"trips"
//	"trips.cancel"
//	"*.create"
func (t *Trie[T]) Insert(key string, val T) error {
	if t == nil {
		return ErrInvalidKey
	}
	segs, ok := split(key, true)
	if !ok || len(segs) == 0 || allWildcards(segs) {
		return ErrInvalidKey
	}
	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = key
	return nil
}

// Match returns the value of the deepest key that is a segment prefix of
// op. Exact segments and wildcards are both explored; at equal depth the
// exact branch wins.
func (t *Trie[T]) Match(op string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(op)
	return v, ok
}

// MatchWithPattern is Match that also returns the key that matched.
func (t *Trie[T]) MatchWithPattern(op string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	segs, ok := split(op, false)
	if !ok {
		return zero, false, ""
	}

	best := -1
	var bestNode *Trie[T]
	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > best {
			best, bestNode = depth, n
		}
		if depth == len(segs) {
			return
		}
		// Exact first, so it claims a depth before the wildcard can.
		if next, ok := n.children[segs[depth]]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, depth+1)
		}
	}
	dfs(t, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// Collect returns every value stored at or below prefix, ordered by key.
// Wildcard nodes on the way match any prefix segment.
func (t *Trie[T]) Collect(prefix string) []T {
	if t == nil {
		return nil
	}
	segs, ok := split(prefix, false)
	if !ok {
		return nil
	}

	// Walk down the prefix, fanning out over wildcards.
	frontier := []*Trie[T]{t}
	for _, s := range segs {
		var next []*Trie[T]
		for _, n := range frontier {
			if c, ok := n.children[s]; ok {
				next = append(next, c)
			}
			if c, ok := n.children["*"]; ok {
				next = append(next, c)
			}
		}
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}

	type entry struct {
		key string
		val T
	}
	var found []entry
	var walk func(n *Trie[T])
	walk = func(n *Trie[T]) {
		if n.hasVal {
			found = append(found, entry{n.pattern, n.val})
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, n := range frontier {
		walk(n)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].key < found[j].key })
	out := make([]T, len(found))
	for i, e := range found {
		out[i] = e.val
	}
	return out
}

// split breaks s into validated segments. The empty string yields an empty,
// valid list.
func split(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

func allWildcards(segs []string) bool {
	for _, s := range segs {
		if s != "*" {
			return false
		}
	}
	return true
}

// validSegment accepts [a-z][a-z0-9_]*, and "*" when allowWildcard is set.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
