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

package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// ClientBaseInfo is the identity part shared by a client and its
// registration request.
type ClientBaseInfo struct {
	Email             string `json:"email" validate:"required,email"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	MobilePhoneNumber string `json:"mobilePhoneNumber" validate:"required"`
}

// Client is a passenger account.
type Client struct {
	ClientBaseInfo
	Enabled bool      `json:"enabled"`
	UserID  string    `json:"userId"`
	Created time.Time `json:"created"`
}

// UnmarshalJSON decodes a Client and coerces the creation date.
func (c *Client) UnmarshalJSON(b []byte) error {
	type plain Client
	aux := struct {
		plain
		Created any `json:"created"`
	}{plain: plain(*c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t, err := coerceTime("client.created", aux.Created)
	if err != nil {
		return err
	}
	*c = Client(aux.plain)
	c.Created = t
	return nil
}
