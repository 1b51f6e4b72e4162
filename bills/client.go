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

// Package bills downloads trip invoices.
package bills

import (
	"context"
	"net/url"
	"strings"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// Client calls the bills endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// DownloadInvoice returns the raw invoice document (PDF) of a trip.
func (c *Client) DownloadInvoice(ctx context.Context, tripID string) ([]byte, error) {
	if strings.TrimSpace(tripID) == "" {
		return nil, apierr.NewParamError(operation.BillsInvoice, "tripId", "is required")
	}
	b, err := c.rest.GetBinary(ctx, "/bills/trip/"+url.PathEscape(tripID), nil)
	if err != nil {
		return nil, apierr.Annotate(err, operation.BillsInvoice)
	}
	return b, nil
}
