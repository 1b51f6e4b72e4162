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

package operation

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Operation is the canonical, validated identifier of an endpoint operation.
//
// Operations are dot-separated identifiers with 1 to 4 segments, each segment
// a lowercase identifier:
//
//   - "trips.cancel"
//   - "estimation.approach_time"
type Operation string

// MinLength and MaxLength define the allowed length range for a non-empty
// operation.
const (
	MinLength = 3
	MaxLength = 128
)

// opFmt accepts 1 to 4 dot-separated segments, each starting with a lowercase
// ASCII letter followed by lowercase letters, digits or underscores.
const opFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var opRe = regexp.MustCompile(opFmt)

var (
	// ErrInvalidFormat is returned when an operation does not conform to the
	// expected format.
	ErrInvalidFormat = errors.New("mysam: invalid operation format")
	// ErrInvalidLength is returned when an operation is too short or too long.
	ErrInvalidLength = errors.New("mysam: invalid operation length")
)

var (
	_ encoding.TextMarshaler   = (*Operation)(nil)
	_ encoding.TextUnmarshaler = (*Operation)(nil)
)

// Empty is the zero-value operation, meaning "not annotated".
var Empty Operation = ""

// Normalize brings an arbitrary string closer to the canonical form:
// spaces are trimmed, the value is lowercased, "/" becomes "." and "-"
// becomes "_". It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Operation, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Operation(s), nil
}

// MustParse is the panic-on-error variant of Parse.
//
// Unlike Parse, MustParse does NOT allow the empty string.
func MustParse(s string) Operation {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if op == Empty {
		panic("mysam: empty operation in MustParse")
	}
	return op
}

// Validate checks whether op is in canonical form. Empty is valid.
func Validate(op Operation) error {
	if op == Empty {
		return nil
	}
	return validate(string(op))
}

// String returns the canonical string representation of the operation.
func (op Operation) String() string {
	return string(op)
}

// Segments splits the operation on ".". Empty yields nil.
func (op Operation) Segments() []string {
	if op == Empty {
		return nil
	}
	return strings.Split(string(op), ".")
}

// Endpoint returns the endpoint group, i.e. the first segment.
func (op Operation) Endpoint() string {
	endpoint, _, _ := strings.Cut(string(op), ".")
	return endpoint
}

// Action returns the last segment.
func (op Operation) Action() string {
	if i := strings.LastIndexByte(string(op), '.'); i >= 0 {
		return string(op)[i+1:]
	}
	return string(op)
}

// HasPrefix reports whether op starts with prefix on a segment boundary:
// "trips.create" has prefix "trips" but not "trip".
func (op Operation) HasPrefix(prefix string) bool {
	s := string(op)
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return false
	}
	return len(s) == len(prefix) || s[len(prefix)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (op Operation) MarshalText() ([]byte, error) {
	if err := Validate(op); err != nil {
		return nil, err
	}
	return []byte(op), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operation) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !opRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
