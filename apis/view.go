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

package apis

// ViewProvider is implemented by errors that can render themselves in the
// backend payload shape.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the serializable form of a backend error. Its JSON shape is
// the backend error payload, so a service relaying MySAM failures answers its
// own clients in the same format, plus the optional operation.
type ErrorView struct {
	Error            string         `json:"error"`
	ErrorType        string         `json:"error_type"`
	ErrorCode        int            `json:"error_code"`
	ErrorDescription string         `json:"error_description"`
	ExtraParameters  map[string]any `json:"extraParameters,omitempty"`

	// Operation is the failing endpoint operation, when known.
	Operation string `json:"operation,omitempty"`
}
