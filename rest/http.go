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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"dirpx.dev/mysam/apierr"
)

// DefaultUserAgent is sent unless WithUserAgent says otherwise.
const DefaultUserAgent = "mysam-go"

// HTTPClient is the net/http implementation of Client.
type HTTPClient struct {
	baseURL   string
	apiKey    string
	userAgent string
	timeout   time.Duration
	hc        *http.Client
	log       *zap.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the given MySAM subdomain.
func NewHTTPClient(subdomain, apiKey string, opts ...Option) (*HTTPClient, error) {
	subdomain = strings.TrimSpace(subdomain)
	apiKey = strings.TrimSpace(apiKey)
	if subdomain == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}

	c := &HTTPClient{
		baseURL:   "https://" + subdomain + ".mysam.fr/api",
		apiKey:    apiKey,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: c.timeout}
	}
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("mysam: invalid base URL %q: %w", c.baseURL, err)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	c.log = c.log.With(zap.String("component", "mysam.rest"))
	return c, nil
}

// BaseURL returns the API root requests are sent to.
func (c *HTTPClient) BaseURL() string { return c.baseURL }

// Get decodes the JSON answer to GET path into out.
func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	b, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(path, b, out)
}

// GetBinary returns the raw answer to GET path.
func (c *HTTPClient) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post sends body as JSON and decodes the answer into out.
func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	b, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(path, b, out)
}

// Put sends body as JSON and decodes the answer into out.
func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	b, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return decode(path, b, out)
}

// do performs one round trip and returns the body of a 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("mysam: encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("mysam: build %s %s: %w", method, path, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("mysam request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("mysam: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mysam: read %s %s: %w", method, path, err)
	}

	c.log.Debug("mysam request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.failure(req, resp, b)
	}
	return b, nil
}

// failure converts a non-2xx response. This is the only place a backend
// payload becomes an *apierr.Error.
func (c *HTTPClient) failure(req *http.Request, resp *http.Response, body []byte) error {
	var info apierr.Info
	if err := json.Unmarshal(body, &info); err == nil {
		if de, err := apierr.FromInfo(info, req, resp); err == nil {
			c.log.Debug("mysam error payload",
				zap.String("error_type", string(de.Type)),
				zap.Int("error_code", de.Code),
				zap.Int("status", resp.StatusCode),
			)
			return de
		}
	}
	c.log.Warn("mysam unexpected response",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
	)
	return &HTTPError{StatusCode: resp.StatusCode, Body: body}
}

func decode(path string, b []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("mysam: decode %s: %w", path, err)
	}
	return nil
}
