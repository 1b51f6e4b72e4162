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

package trips

import (
	"net/http"
	"net/url"
	"time"
)

// DateRange bounds a trip search by start date.
type DateRange struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

// SearchFilter selects which trips a search covers: AllTrips, MySAMTrips or
// ClientTrips. A nil filter means AllTrips.
type SearchFilter interface {
	route() (method, path string)
}

// AllTrips covers every trip of the account.
type AllTrips struct{}

// MySAMTrips covers the trips created through MySAM itself.
type MySAMTrips struct{}

// ClientTrips covers the trips of one client.
type ClientTrips struct {
	ClientID string `json:"clientId" validate:"required"`
}

func (AllTrips) route() (string, string)   { return http.MethodPost, "/trips/summary" }
func (MySAMTrips) route() (string, string) { return http.MethodPut, "/trips/created-through-mysam" }
func (f ClientTrips) route() (string, string) {
	return http.MethodPost, "/trips/summary/" + url.PathEscape(f.ClientID)
}
