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

package apierr

import (
	"errors"
	"sort"
	"strings"

	"dirpx.dev/mysam/operation"
)

// ErrInvalidParams is the sentinel wrapped by every *ParamError.
var ErrInvalidParams = errors.New("mysam: invalid request parameters")

// ParamError reports an illegal request shape detected before any network
// call, such as a passenger count outside the range of the vehicle type or a
// missing payment method.
type ParamError struct {
	Operation operation.Operation

	// Fields maps the wire name of each offending field to a short message.
	Fields map[string]string
}

// NewParamError builds a ParamError with a single offending field.
func NewParamError(op operation.Operation, field, msg string) *ParamError {
	return &ParamError{Operation: op, Fields: map[string]string{field: msg}}
}

// With returns a copy of e with one more offending field.
func (e *ParamError) With(field, msg string) *ParamError {
	m := make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		m[k] = v
	}
	m[field] = msg
	return &ParamError{Operation: e.Operation, Fields: m}
}

// Error lists the offending fields in a stable order.
func (e *ParamError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(ErrInvalidParams.Error())
	if e.Operation != operation.Empty {
		b.WriteString(" for ")
		b.WriteString(string(e.Operation))
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(" ")
		b.WriteString(e.Fields[k])
	}
	return b.String()
}

// Unwrap makes errors.Is(err, ErrInvalidParams) hold.
func (e *ParamError) Unwrap() error { return ErrInvalidParams }

// IsParamError reports whether err's chain contains a *ParamError.
func IsParamError(err error) bool {
	var pe *ParamError
	return errors.As(err, &pe)
}
