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

package rest

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when the subdomain or API key is empty.
var ErrMissingCredentials = errors.New("mysam: subdomain and API key are required")

// HTTPError is a non-2xx response whose body is not a backend error payload.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error reports the status and the start of the body.
func (e *HTTPError) Error() string {
	const limit = 256
	body := e.Body
	if len(body) > limit {
		body = body[:limit]
	}
	return fmt.Sprintf("mysam: HTTP %d: %s", e.StatusCode, body)
}

// IsHTTPError reports whether err is or wraps an *HTTPError.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}
