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
	"strings"

	json "github.com/goccy/go-json"
)

// Info is the error payload returned by the backend.
//
// The field names follow the backend verbatim, including the camel-cased
// "extraParameters" next to the snake-cased fields.
type Info struct {
	Error            string         `json:"error"`
	ErrorType        string         `json:"error_type"`
	ErrorCode        int            `json:"error_code"`
	ErrorDescription string         `json:"error_description"`
	ExtraParameters  map[string]any `json:"extraParameters,omitempty"`

	// hasCode records that a decoded payload carried error_code, so that an
	// explicit 0 is told apart from a missing field.
	hasCode bool
}

// UnmarshalJSON decodes the payload and records whether error_code was sent.
func (i *Info) UnmarshalJSON(b []byte) error {
	type plain Info
	aux := struct {
		plain
		ErrorCode *int `json:"error_code"`
	}{plain: plain(*i)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*i = Info(aux.plain)
	i.ErrorCode, i.hasCode = 0, aux.ErrorCode != nil
	if i.hasCode {
		i.ErrorCode = *aux.ErrorCode
	}
	return nil
}

// Complete reports whether the payload carries the message, type, code and
// description a domain error requires. A payload built in Go counts as
// carrying a code when the code is not zero.
func (i Info) Complete() bool {
	return strings.TrimSpace(i.Error) != "" &&
		strings.TrimSpace(i.ErrorType) != "" &&
		(i.hasCode || i.ErrorCode != 0) &&
		strings.TrimSpace(i.ErrorDescription) != ""
}
