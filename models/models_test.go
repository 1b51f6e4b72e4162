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
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assignedTrip = `{
  "id": 42,
  "client": {"email":"ada@example.com","firstName":"Ada","lastName":"L","mobilePhoneNumber":"+33600000000","enabled":true,"userId":"c-1","created":"2024-01-02T03:04:05Z"},
  "fromAddress": {"address":"1 rue A","city":"Paris","country":"FR","zipCode":"75001","latitude":48.86,"longitude":2.34},
  "toAddress": {"address":"2 rue B","city":"Paris","country":"FR","zipCode":"75002","latitude":48.87,"longitude":2.35},
  "startDate": "2024-05-01T10:00:00.123Z",
  "status": "ASSIGNED",
  "driver": {"id":7,"email":"d@example.com","enabled":true,"firstName":"D","lastName":"R","highQuality":true,"mobilePhoneNumber":"+33611111111","userID":70,
             "driverDetails":{"vehicleBrand":"Toyota","vehicleColor":"black","vehicleModel":"Prius","vehicleType":"CAR","vehicleYear":2021}},
  "estimatedPrice": 23.5
}`

func TestTrip_DecodeAssigned(t *testing.T) {
	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(assignedTrip), &trip))

	assert.Equal(t, int64(42), trip.ID)
	assert.Equal(t, TripAssigned, trip.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123e6, time.UTC), trip.StartDate.UTC())
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), trip.Client.Created.UTC())
	assert.Equal(t, "ada@example.com", trip.Client.Email)
	require.NotNil(t, trip.Driver)
	assert.Equal(t, VehicleCar, trip.Driver.DriverDetails.VehicleType)
	assert.Nil(t, trip.EndDate)
	assert.Nil(t, trip.EurosDiscountedPrice)
	assert.True(t, trip.Status.HasDriver())
	assert.False(t, trip.Status.HasEndDate())
}

func TestTrip_RoundTripAssigned(t *testing.T) {
	var first Trip
	require.NoError(t, json.Unmarshal([]byte(assignedTrip), &first))

	b, err := json.Marshal(first)
	require.NoError(t, err)

	var second Trip
	require.NoError(t, json.Unmarshal(b, &second))

	assert.True(t, first.StartDate.Equal(second.StartDate))
	assert.True(t, first.Client.Created.Equal(second.Client.Created))
	require.NotNil(t, second.Driver)
	assert.Equal(t, *first.Driver, *second.Driver)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.FromAddress, second.FromAddress)
	assert.Nil(t, second.EndDate)
}

func TestTrip_FinishedHasEndDate(t *testing.T) {
	raw := `{"id":1,"status":"FINISHED","startDate":"2024-05-01T10:00:00","endDate":"2024-05-01T10:45:00Z","driver":{"id":3},"eurosDiscountedPrice":12.5}`
	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(raw), &trip))

	require.NotNil(t, trip.EndDate)
	assert.Equal(t, 45*time.Minute, trip.EndDate.Sub(trip.StartDate))
	require.NotNil(t, trip.EurosDiscountedPrice)
	assert.Equal(t, 12.5, *trip.EurosDiscountedPrice)
	assert.True(t, trip.Status.Terminal())
}

func TestTrip_WaitingHasNoDriver(t *testing.T) {
	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"status":"WAITING","startDate":"2024-05-01T10:00:00Z","endDate":null}`), &trip))
	assert.Nil(t, trip.Driver)
	assert.Nil(t, trip.EndDate)
	assert.False(t, trip.Status.HasDriver())
}

func TestTrip_InvalidDate(t *testing.T) {
	var trip Trip
	err := json.Unmarshal([]byte(`{"id":2,"startDate":"not a date"}`), &trip)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trip.startDate")
}

func TestEstimation_Decode(t *testing.T) {
	raw := `{"created":"2024-05-01T09:00:00Z","distance":5200,"duration":900,"isPriceIncreased":false,"price":18.4,"startDate":"2024-05-01T10:00:00Z","tripType":"IMMEDIATE","vehicleType":"VAN"}`
	var e Estimation
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, time.Hour, e.StartDate.Sub(e.Created))
	assert.Equal(t, VehicleVan, e.VehicleType)
	assert.Equal(t, 18.4, e.Price)
}

func TestDriverArrivalTimeEstimate_Decode(t *testing.T) {
	raw := `{"distance":800,"duration":120,"tripId":42,"tripStatus":"ASSIGNED","driverLocation":{"latitude":48.8,"longitude":2.3,"locationDate":"2024-05-01T09:58:00Z"}}`
	var d DriverArrivalTimeEstimate
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, 48.8, d.DriverLocation.Latitude)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 58, 0, 0, time.UTC), d.DriverLocation.LocationDate.UTC())
	assert.Equal(t, TripAssigned, d.TripStatus)
}

func TestListResult_Decode(t *testing.T) {
	raw := `{"content":[{"id":1,"startDate":"2024-05-01T10:00:00Z","status":"WAITING"}],"empty":false,"first":true,"last":true,"number":0,"numberOfElements":1,"size":20,"sort":{"sorted":true},"totalElements":1,"totalPages":1}`
	var page ListResult[Trip]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))
	require.Len(t, page.Content, 1)
	assert.False(t, page.Content[0].StartDate.IsZero())
	assert.True(t, page.Sort.Sorted)
}

func TestPagingOptions_Values(t *testing.T) {
	var nilOpts *PagingOptions
	assert.Nil(t, nilOpts.Values())
	assert.Empty(t, (&PagingOptions{}).Values())

	v := (&PagingOptions{Page: 2, Size: 50, Sort: "created,desc"}).Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "50", v.Get("size"))
	assert.Equal(t, "created,desc", v.Get("sort"))
}

func TestCoordinate_Values(t *testing.T) {
	v := Coordinate{Latitude: 48.8566, Longitude: 2.3522}.Values()
	assert.Equal(t, "48.8566", v.Get("latitude"))
	assert.Equal(t, "2.3522", v.Get("longitude"))
}

func TestVehicleType_MaxPassengers(t *testing.T) {
	assert.Equal(t, 4, VehicleCar.MaxPassengers())
	assert.Equal(t, 4, VehicleLuxe.MaxPassengers())
	assert.Equal(t, 8, VehicleVan.MaxPassengers())
	assert.False(t, VehicleType("BUS").Valid())
}

func TestEntities_DecodeWithDates(t *testing.T) {
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(`{"status":"ASSIGNED","startDate":"2024-05-01T10:00:00Z","client":{"created":"2024-01-02T03:04:05Z"}}`), &trip))
	assert.Equal(t, TripAssigned, trip.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), trip.StartDate.UTC())
	assert.Equal(t, want, trip.Client.Created.UTC())

	var c Client
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.fr","userId":"c-1","created":"2024-01-02T03:04:05Z"}`), &c))
	assert.Equal(t, "a@b.fr", c.Email)
	assert.Equal(t, "c-1", c.UserID)
	assert.Equal(t, want, c.Created.UTC())

	var b Bank
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"iban":"FR76","created":"2024-01-02T03:04:05Z"}`), &b))
	assert.Equal(t, int64(3), b.ID)
	assert.Equal(t, "FR76", b.IBAN)
	assert.Equal(t, want, b.Created.UTC())

	var loc DriverLocation
	require.NoError(t, json.Unmarshal([]byte(`{"latitude":48.8,"longitude":2.3,"locationDate":"2024-01-02T03:04:05Z"}`), &loc))
	assert.Equal(t, 48.8, loc.Latitude)
	assert.Equal(t, want, loc.LocationDate.UTC())

	var est Estimation
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"price":12.5,"created":"2024-01-02T03:04:05Z","startDate":null}`), &est))
	assert.Equal(t, int64(5), est.ID)
	assert.Equal(t, 12.5, est.Price)
	assert.Equal(t, want, est.Created.UTC())
	assert.True(t, est.StartDate.IsZero())
}

func TestDates_NumbersAreMilliseconds(t *testing.T) {
	var c Client
	require.NoError(t, json.Unmarshal([]byte(`{"created":1704164645000}`), &c))
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), c.Created)

	var trip Trip
	require.NoError(t, json.Unmarshal([]byte(`{"status":"FINISHED","startDate":1714557600123,"endDate":1714559400000}`), &trip))
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123e6, time.UTC), trip.StartDate)
	require.NotNil(t, trip.EndDate)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), *trip.EndDate)
}
