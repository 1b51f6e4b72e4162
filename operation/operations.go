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

package operation

// Clients endpoint.
const (
	ClientsList     Operation = "clients.list"
	ClientsRegister Operation = "clients.register"
	ClientsUpdate   Operation = "clients.update"
)

// Addresses endpoint.
const (
	AddressesSearch         Operation = "addresses.search"
	AddressesReverseGeocode Operation = "addresses.reverse_geocode"
)

// Estimation endpoint.
const (
	EstimationApproachTime Operation = "estimation.approach_time"
	EstimationEstimate     Operation = "estimation.estimate"
)

// Flat fees, bills and coupons endpoints.
const (
	FlatFeesList  Operation = "flatfees.list"
	BillsInvoice  Operation = "bills.invoice"
	CouponsCreate Operation = "coupons.create"
)

// Trips endpoint.
const (
	TripsGet              Operation = "trips.get"
	TripsCancel           Operation = "trips.cancel"
	TripsCancelEstimation Operation = "trips.cancel_estimation"
	TripsDiscount         Operation = "trips.discount"
	TripsCreate           Operation = "trips.create"
	TripsSummary          Operation = "trips.summary"
)

// Trip driver endpoint.
const (
	TripDriverLocation  Operation = "tripdriver.location"
	TripDriverPickUpETA Operation = "tripdriver.pickup_eta"
)

// Endpoint groups. Each is the common prefix of its operations.
const (
	Clients    Operation = "clients"
	Addresses  Operation = "addresses"
	Estimation Operation = "estimation"
	FlatFees   Operation = "flatfees"
	Bills      Operation = "bills"
	Coupons    Operation = "coupons"
	Trips      Operation = "trips"
	TripDriver Operation = "tripdriver"
)
