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

// Package resttest provides an in-memory rest.Client for endpoint tests.
package resttest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	json "github.com/goccy/go-json"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/rest"
)

// ErrNoResponse is returned for a call no response was registered for.
var ErrNoResponse = errors.New("resttest: no response registered")

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	// Body is the request payload as it would be sent on the wire.
	Body json.RawMessage
}

// Response is what the fake answers for a method and path.
type Response struct {
	Body []byte
	Err  error
}

// Fake is a concurrency-safe rest.Client recording every call.
type Fake struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]Response
}

var _ rest.Client = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{responses: make(map[string]Response)}
}

func key(method, path string) string { return method + " " + path }

// JSON registers a raw JSON body for method and path.
func (f *Fake) JSON(method, path, body string) *Fake {
	return f.set(method, path, Response{Body: []byte(body)})
}

// Bytes registers a binary body for method and path.
func (f *Fake) Bytes(method, path string, body []byte) *Fake {
	return f.set(method, path, Response{Body: body})
}

// Error registers err as the outcome of method and path.
func (f *Fake) Error(method, path string, err error) *Fake {
	return f.set(method, path, Response{Err: err})
}

// Payload registers a backend error payload answered with status, converted
// the same way the HTTP transport converts it.
func (f *Fake) Payload(method, path string, status int, info apierr.Info) *Fake {
	req, _ := http.NewRequest(method, "https://test.mysam.fr/api"+path, nil)
	resp := &http.Response{StatusCode: status, Request: req}
	de, err := apierr.FromInfo(info, req, resp)
	if err != nil {
		return f.Error(method, path, &rest.HTTPError{StatusCode: status})
	}
	return f.Error(method, path, de)
}

func (f *Fake) set(method, path string, r Response) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key(method, path)] = r
	return f
}

// Calls returns a copy of the recorded calls in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Last returns the most recent call, or the zero Call.
func (f *Fake) Last() Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return Call{}
	}
	return f.calls[len(f.calls)-1]
}

// Get records the call and decodes the registered body into out.
func (f *Fake) Get(ctx context.Context, path string, query url.Values, out any) error {
	b, err := f.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(b, out)
}

// GetBinary records the call and returns the registered body.
func (f *Fake) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return f.do(ctx, http.MethodGet, path, query, nil)
}

// Post records the call and decodes the registered body into out.
func (f *Fake) Post(ctx context.Context, path string, body, out any) error {
	b, err := f.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(b, out)
}

// Put records the call and decodes the registered body into out.
func (f *Fake) Put(ctx context.Context, path string, body, out any) error {
	b, err := f.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return decode(b, out)
}

func (f *Fake) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := Call{Method: method, Path: path, Query: query}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("resttest: encode body: %w", err)
		}
		c.Body = b
	}

	f.mu.Lock()
	f.calls = append(f.calls, c)
	r, ok := f.responses[key(method, path)]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNoResponse, method, path)
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Body, nil
}

func decode(b []byte, out any) error {
	if out == nil || len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}
