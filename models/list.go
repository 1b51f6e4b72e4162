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
	"net/url"
	"strconv"
)

// ListResult is one page of a paged listing.
type ListResult[T any] struct {
	Content          []T        `json:"content"`
	Empty            bool       `json:"empty"`
	First            bool       `json:"first"`
	Last             bool       `json:"last"`
	Number           int        `json:"number"`
	NumberOfElements int        `json:"numberOfElements"`
	Size             int        `json:"size"`
	Sort             SortStatus `json:"sort"`
	TotalElements    int64      `json:"totalElements"`
	TotalPages       int        `json:"totalPages"`
}

// SortStatus describes how a page was sorted.
type SortStatus struct {
	Empty    bool `json:"empty"`
	Sorted   bool `json:"sorted"`
	Unsorted bool `json:"unsorted"`
}

// PagingOptions selects a page. Zero fields are not sent.
type PagingOptions struct {
	Page int    `json:"page,omitempty" validate:"gte=0"`
	Size int    `json:"size,omitempty" validate:"gte=0"`
	Sort string `json:"sort,omitempty"`
}

// Values encodes p as query parameters; a nil p yields nil.
func (p *PagingOptions) Values() url.Values {
	if p == nil {
		return nil
	}
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		v.Set("size", strconv.Itoa(p.Size))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	return v
}
