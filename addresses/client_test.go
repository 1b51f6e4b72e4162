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

package addresses

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/rest/resttest"
)

func TestSearch(t *testing.T) {
	f := resttest.New().JSON(http.MethodGet, "/addresses/search", `{"address":"10 rue de Rivoli","city":"Paris","zipCode":"75004","latitude":48.85,"longitude":2.36}`)

	got, err := New(f).Search(context.Background(), "10 rue de Rivoli")
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, "10 rue de Rivoli", f.Last().Query.Get("query"))
}

func TestSearch_EmptyQuery(t *testing.T) {
	f := resttest.New()
	_, err := New(f).Search(context.Background(), "  ")
	assert.ErrorIs(t, err, apierr.ErrInvalidParams)
	assert.Empty(t, f.Calls())
}

func TestReverseGeocode(t *testing.T) {
	f := resttest.New().JSON(http.MethodGet, "/addresses/reverse-geocode", `{"city":"Lyon"}`)

	got, err := New(f).ReverseGeocode(context.Background(), models.Coordinate{Latitude: 45.76, Longitude: 4.84})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got.City)
	q := f.Last().Query
	assert.Equal(t, "45.76", q.Get("latitude"))
	assert.Equal(t, "4.84", q.Get("longitude"))
}

func TestReverseGeocode_OutOfRange(t *testing.T) {
	f := resttest.New()
	_, err := New(f).ReverseGeocode(context.Background(), models.Coordinate{Latitude: 91})
	var pe *apierr.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Fields, "latitude")
	assert.Empty(t, f.Calls())
}
