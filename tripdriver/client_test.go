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

package tripdriver

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/models"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/rest/resttest"
)

func TestDriverLocation(t *testing.T) {
	f := resttest.New().JSON(http.MethodGet, "/trip/42/driver/location",
		`{"latitude":48.8,"longitude":2.3,"locationDate":"2024-05-01T09:58:00Z"}`)

	got, err := New(f).DriverLocation(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 48.8, got.Latitude)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 58, 0, 0, time.UTC), got.LocationDate.UTC())
}

func TestEstimateTimeToPickUp(t *testing.T) {
	f := resttest.New().JSON(http.MethodGet, "/trip/42/driver/location",
		`{"distance":800,"duration":120,"tripId":42,"tripStatus":"ASSIGNED","driverLocation":{"latitude":48.8,"longitude":2.3,"locationDate":"2024-05-01T09:58:00Z"}}`)

	got, err := New(f).EstimateTimeToPickUp(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.TripID)
	assert.Equal(t, models.TripAssigned, got.TripStatus)
	assert.False(t, got.DriverLocation.LocationDate.IsZero())
}

func TestEstimateTimeToPickUp_NoDriver(t *testing.T) {
	f := resttest.New().Payload(http.MethodGet, "/trip/42/driver/location", 409, apierr.Info{
		Error: "Conflict", ErrorType: "NO_DRIVER_ASSIGNED_TO_TRIP", ErrorCode: 409, ErrorDescription: "no driver yet",
	})
	_, err := New(f).EstimateTimeToPickUp(context.Background(), "42")

	de, ok := AsPickUpError(err)
	require.True(t, ok)
	assert.Equal(t, operation.TripDriverPickUpETA, de.Operation)
	assert.False(t, IsLocationError(err))
	assert.True(t, IsError(err))
}

func TestEmptyTripID(t *testing.T) {
	f := resttest.New()
	_, err := New(f).DriverLocation(context.Background(), "")
	assert.ErrorIs(t, err, apierr.ErrInvalidParams)
	_, err = New(f).EstimateTimeToPickUp(context.Background(), "")
	assert.ErrorIs(t, err, apierr.ErrInvalidParams)
	assert.Empty(t, f.Calls())
}

func TestClassifiers_ClosedSets(t *testing.T) {
	location := map[errtype.Type]bool{errtype.TripStatusInvalid: true, errtype.TripNotFound: true}
	pickUp := map[errtype.Type]bool{
		errtype.NoDriverAssignedToTrip: true,
		errtype.TripNotFound:           true,
		errtype.ThirdPartyCallFailed:   true,
	}
	for _, ty := range errtype.All() {
		err := fmt.Errorf("wrapped: %w", apierr.E(ty, "x"))
		assert.Equal(t, location[ty], IsLocationError(err), ty)
		assert.Equal(t, pickUp[ty], IsPickUpError(err), ty)
		assert.Equal(t, location[ty] || pickUp[ty], IsError(err), ty)
	}
}
