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

// Package clients manages passenger accounts.
package clients

import (
	"context"
	"strings"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/internal/validate"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest"
)

// RegisterParams creates a client account.
type RegisterParams struct {
	models.ClientBaseInfo
	EmailOptIn *bool  `json:"emailOptIn,omitempty"`
	Password   string `json:"password" validate:"required"`
}

// UpdateParams changes a client account. Nil fields are left untouched.
type UpdateParams struct {
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName         *string `json:"firstName,omitempty"`
	LastName          *string `json:"lastName,omitempty"`
	MobilePhoneNumber *string `json:"mobilePhoneNumber,omitempty"`
	EmailOptIn        *bool   `json:"emailOptIn,omitempty"`
	Password          *string `json:"password,omitempty"`
}

type updateBody struct {
	UserID string `json:"userId"`
	UpdateParams
}

// Client calls the clients endpoints.
type Client struct {
	rest rest.Client
}

// New returns a Client sending its requests through c.
func New(c rest.Client) *Client {
	return &Client{rest: c}
}

// List returns one page of clients. A nil paging lets the backend choose.
func (c *Client) List(ctx context.Context, paging *models.PagingOptions) (*models.ListResult[models.Client], error) {
	if paging != nil {
		if err := validate.Struct(operation.ClientsList, paging); err != nil {
			return nil, err
		}
	}
	var out models.ListResult[models.Client]
	if err := c.rest.Get(ctx, "/clients", paging.Values(), &out); err != nil {
		return nil, apierr.Annotate(err, operation.ClientsList)
	}
	return &out, nil
}

// Register creates a client. Failures of type RegisterErrors are narrowed by
// AsRegisterError.
func (c *Client) Register(ctx context.Context, p RegisterParams) (*models.Client, error) {
	if err := validate.Struct(operation.ClientsRegister, p); err != nil {
		return nil, err
	}
	var out models.Client
	if err := c.rest.Post(ctx, "/clients/register", p, &out); err != nil {
		return nil, apierr.Annotate(err, operation.ClientsRegister)
	}
	return &out, nil
}

// Update changes the account of userID.
func (c *Client) Update(ctx context.Context, userID string, p UpdateParams) (*models.Client, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apierr.NewParamError(operation.ClientsUpdate, "userId", "is required")
	}
	if err := validate.Struct(operation.ClientsUpdate, p); err != nil {
		return nil, err
	}
	var out models.Client
	if err := c.rest.Put(ctx, "/clients", updateBody{UserID: userID, UpdateParams: p}, &out); err != nil {
		return nil, apierr.Annotate(err, operation.ClientsUpdate)
	}
	return &out, nil
}
