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

package status

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

func TestNew_Defaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(ty errtype.Type, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(ty, operation.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				ty, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(errtype.ClientNotFound, 404, codes.NotFound)
	check(errtype.TropNotFound, 404, codes.NotFound)
	check(errtype.EmailAlreadyExists, 409, codes.AlreadyExists)
	check(errtype.BadRequestParameter, 400, codes.InvalidArgument)
	check(errtype.ThirdPartyCallFailed, 502, codes.Unavailable)
	check(errtype.NoDriverAvailable, 503, codes.ResourceExhausted)
	check(errtype.ImmediateTripsNotAllowed, 403, codes.PermissionDenied)
}

func TestDefaults_CoverCatalogue(t *testing.T) {
	for _, ty := range errtype.All() {
		if _, ok := defaultHTTP[ty]; !ok {
			t.Errorf("no HTTP default for %q", ty)
		}
		if _, ok := defaultGRPC[ty]; !ok {
			t.Errorf("no gRPC default for %q", ty)
		}
	}
}

func TestNotFoundTypes_Map404(t *testing.T) {
	for _, ty := range errtype.All() {
		if len(ty) < len("_NOT_FOUND") || string(ty[len(ty)-len("_NOT_FOUND"):]) != "_NOT_FOUND" {
			continue
		}
		st := Default.Status(ty, operation.Empty)
		if st.HTTP != http.StatusNotFound || st.GRPC != codes.NotFound {
			t.Errorf("%q -> %+v; want 404/NotFound", ty, st)
		}
	}
}

func TestPriority_OverrideOverOperationOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(errtype.TripNotFound, 404),
		WithHTTPOperation(errtype.TripNotFound, "trips", 410),
		WithHTTPOverride(errtype.TripNotFound, 418),
		WithGRPCDefault(errtype.TripNotFound, int(codes.NotFound)),
		WithGRPCOperation(errtype.TripNotFound, "trips", int(codes.Internal)),
		WithGRPCOverride(errtype.TripNotFound, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(errtype.TripNotFound, operation.TripsCancel)
	if st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestOperation_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPOperation(errtype.TripNotFound, "trips", 410),
		WithHTTPOperation(errtype.TripNotFound, "trips.cancel", 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(errtype.TripNotFound, operation.TripsCancel); got != 422 {
		t.Fatalf("LPM failed: got %d, want 422", got)
	}
	if got := m.HTTPStatus(errtype.TripNotFound, operation.TripsGet); got != 410 {
		t.Fatalf("prefix failed: got %d, want 410", got)
	}

	m2, _ := New(WithHTTPOperation(errtype.TripNotFound, "trips.cancel", 499))
	if got := m2.HTTPStatus(errtype.TripNotFound, operation.MustParse("trips.cancel.preview")); got != 499 {
		t.Fatalf("segment prefix should match deeper operation; got %d", got)
	}
	// "trips.cancel" must not match "trips.cancel_estimation" or "trips.can".
	for _, op := range []operation.Operation{operation.TripsCancelEstimation, operation.MustParse("trips.can")} {
		if got := m2.HTTPStatus(errtype.TripNotFound, op); got == 499 {
			t.Fatalf("unexpected match across segment boundary for %q", op)
		}
	}
}

func TestOperation_Wildcard(t *testing.T) {
	m, err := New(WithGRPCOperation(errtype.ClientNotFound, "*.create", int(codes.FailedPrecondition)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(errtype.ClientNotFound, operation.TripsCreate); got != codes.FailedPrecondition {
		t.Fatalf("wildcard: got %v", got)
	}
	if got := m.GRPCStatus(errtype.ClientNotFound, operation.TripsSummary); got != codes.NotFound {
		t.Fatalf("default expected; got %v", got)
	}
}

func TestNew_RejectsBadPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "*.*", "trips..cancel", "trips.$"} {
		if _, err := New(WithHTTPOperation(errtype.TripNotFound, p, 400)); err == nil {
			t.Errorf("prefix %q: expected error", p)
		}
	}
}

func TestFallback(t *testing.T) {
	unknown := errtype.Type("SOMETHING_NEW")
	if st := Default.Status(unknown, operation.Empty); st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback: %+v", st)
	}
	m := MustNew(WithFallback(502, codes.Unknown))
	if st := m.Status(unknown, operation.Empty); st.HTTP != 502 || st.GRPC != codes.Unknown {
		t.Fatalf("custom fallback: %+v", st)
	}
}

func TestResolve(t *testing.T) {
	m := MustNew(WithHTTPOperation(errtype.TripNotFound, "trips.cancel", 410))

	e := apierr.E(errtype.TripNotFound, "trip not found", apierr.WithOperationOption(operation.TripsCancel))
	st, ok := Resolve(m, fmt.Errorf("wrapped: %w", e))
	if !ok || st.HTTP != 410 || st.GRPC != codes.NotFound {
		t.Fatalf("Resolve: ok=%v st=%+v", ok, st)
	}

	if _, ok := Resolve(m, errors.New("boom")); ok {
		t.Fatalf("Resolve must reject non-domain errors")
	}
	if st, ok := Resolve(nil, e); !ok || st.HTTP != 404 {
		t.Fatalf("nil mapper must use Default; got %+v", st)
	}
}

func TestConcurrentReads(t *testing.T) {
	m := MustNew(
		WithHTTPOperation(errtype.TripNotFound, "trips.*", 410),
		WithGRPCOperation(errtype.TripNotFound, "trips.*", int(codes.FailedPrecondition)),
	)
	ops := []operation.Operation{operation.TripsCancel, operation.TripsGet, operation.ClientsUpdate}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				op := ops[(i+j)%len(ops)]
				st := m.Status(errtype.TripNotFound, op)
				want := 410
				if op == operation.ClientsUpdate {
					want = 404
				}
				if st.HTTP != want {
					t.Errorf("op %q: got %d want %d", op, st.HTTP, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkStatus_Operation(b *testing.B) {
	m := MustNew(WithHTTPOperation(errtype.TripNotFound, "trips.cancel", 410))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(errtype.TripNotFound, operation.TripsCancel)
	}
}
