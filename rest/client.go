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
	"context"
	"net/url"
)

// Client is the transport the endpoint clients use. Paths are relative to
// the API root and start with "/".
//
// out may be nil when the response body is not needed. body may be nil for
// requests without a payload.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	GetBinary(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}
