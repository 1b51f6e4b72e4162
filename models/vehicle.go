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

// VehicleType is the class of vehicle a trip or estimation asks for.
type VehicleType string

const (
	VehicleCar  VehicleType = "CAR"
	VehicleLuxe VehicleType = "LUXE"
	VehicleVan  VehicleType = "VAN"
)

// MaxPassengers returns the seat limit of v, or 0 for an unknown type.
func (v VehicleType) MaxPassengers() int {
	switch v {
	case VehicleCar, VehicleLuxe:
		return 4
	case VehicleVan:
		return 8
	default:
		return 0
	}
}

// Valid reports whether v is a known vehicle type.
func (v VehicleType) Valid() bool { return v.MaxPassengers() > 0 }
