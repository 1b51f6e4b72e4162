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

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Operation
		wantErr error
	}{
		{"trips.create", TripsCreate, nil},
		{"  Trips/Cancel ", TripsCancel, nil},
		{"tripdriver.pickup-eta", TripDriverPickUpETA, nil},
		{"", Empty, nil},
		{"ab", Empty, ErrInvalidLength},
		{"trips..create", Empty, ErrInvalidFormat},
		{"1trips.create", Empty, ErrInvalidFormat},
		{"a.b.c.d.e", Empty, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_RejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(\"\") should panic")
		}
	}()
	_ = MustParse("")
}

func TestSegments(t *testing.T) {
	if got := TripDriverPickUpETA.Endpoint(); got != "tripdriver" {
		t.Fatalf("Endpoint() = %q", got)
	}
	if got := TripDriverPickUpETA.Action(); got != "pickup_eta" {
		t.Fatalf("Action() = %q", got)
	}
	if got := Operation("trips").Action(); got != "trips" {
		t.Fatalf("Action() on single segment = %q", got)
	}
	if segs := Empty.Segments(); segs != nil {
		t.Fatalf("Empty.Segments() = %v, want nil", segs)
	}
	if segs := EstimationApproachTime.Segments(); len(segs) != 2 || segs[1] != "approach_time" {
		t.Fatalf("Segments() = %v", segs)
	}
}

func TestHasPrefix_SegmentBoundary(t *testing.T) {
	if !TripsCreate.HasPrefix("trips") {
		t.Fatal("trips.create must have prefix trips")
	}
	if !TripsCreate.HasPrefix("trips.create") {
		t.Fatal("an operation is its own prefix")
	}
	if TripsCreate.HasPrefix("trip") {
		t.Fatal("prefix must stop at a segment boundary")
	}
	if TripDriverLocation.HasPrefix("trips") {
		t.Fatal("tripdriver is not under trips")
	}
	if TripsCreate.HasPrefix("") {
		t.Fatal("empty prefix must not match")
	}
}

func TestTextRoundTrip(t *testing.T) {
	var op Operation
	if err := op.UnmarshalText([]byte(" COUPONS.CREATE ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if op != CouponsCreate {
		t.Fatalf("UnmarshalText = %q", op)
	}
	b, err := Empty.MarshalText()
	if err != nil || len(b) != 0 {
		t.Fatalf("Empty.MarshalText() = %q, %v", b, err)
	}
	if _, err := Operation("Bad Op").MarshalText(); err == nil {
		t.Fatal("MarshalText on invalid operation must fail")
	}
}
