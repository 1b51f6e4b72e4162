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

package errtype

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Type is the canonical, validated representation of a backend error type.
//
// It is a separate type (not just string) so that classifiers and error sets
// declare exactly which values they expect, and raw payload strings are not
// mixed with validated ones by accident.
type Type string

// MinLength and MaxLength define the allowed length range for an error type.
const (
	// MinLength is the minimum length for a valid type.
	MinLength = 3

	// MaxLength is the maximum length for a valid type. The longest type
	// documented by the backend ("TRIP_NUMBER_OF_PASSENGERS_OUT_OF_RANGE")
	// is well below it.
	MaxLength = 64
)

const (
	// typeFmt is the canonical regular expression used to validate types.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]{2,63} - uppercase letters, digits or underscore, making the
	//	                  total length 3..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength above.
	typeFmt = `^[A-Z][A-Z0-9_]{2,63}$`
)

var (
	// typeRe is the compiled form of typeFmt.
	//
	// Examples of valid types:
	//   - "TRIP_NOT_FOUND"
	//   - "COUPON_NOT_ACCEPTABLE"
	//
	// Examples of invalid types:
	//   - "trip_not_found" (lowercase, only valid after Normalize)
	//   - "TRIP-NOT-FOUND" (dash, only valid after Normalize)
	//   - "_TRIP"          (does not start with a letter)
	//   - "NO"             (too short)
	typeRe = regexp.MustCompile(typeFmt)
)

var (
	// ErrTypeInvalid is returned when a value cannot be parsed or validated
	// as an error type.
	ErrTypeInvalid = errors.New("mysam: invalid error type")
)

var (
	_ encoding.TextMarshaler   = (*Type)(nil)
	_ encoding.TextUnmarshaler = (*Type)(nil)
)

// Empty is the zero-value type. It is never valid.
var Empty Type = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Type value.
func Parse(s string) (Type, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Type(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize brings an arbitrary string closer to the canonical type form.
//
// Only non-lossy transformations are applied:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Type is valid.
func Validate(t Type) error {
	return validate(string(t))
}

// String returns the canonical string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Known reports whether t belongs to the catalogue returned by All.
func (t Type) Known() bool {
	_, ok := catalogue[t]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (t *Type) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func validate(s string) error {
	if !typeRe.MatchString(s) {
		return ErrTypeInvalid
	}
	return nil
}
