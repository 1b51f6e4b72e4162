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

package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

func clientNotFound() Info {
	return Info{
		Error:            "x",
		ErrorType:        "CLIENT_NOT_FOUND",
		ErrorCode:        404,
		ErrorDescription: "not found",
	}
}

func TestFromInfo_Complete(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPut, "https://acme.mysam.fr/api/clients", nil)
	resp := &http.Response{StatusCode: http.StatusNotFound, Request: req}

	info := clientNotFound()
	info.ExtraParameters = map[string]any{"userId": "u1"}

	e, err := FromInfo(info, req, resp)
	if err != nil {
		t.Fatalf("FromInfo: %v", err)
	}
	if e.Kind != KindDomain {
		t.Fatalf("Kind = %v, want domain", e.Kind)
	}
	if e.Type != errtype.ClientNotFound || e.Code != 404 || e.Message != "x" || e.Description != "not found" {
		t.Fatalf("unexpected fields: %+v", e)
	}
	if e.Request != req || e.Response != resp || e.StatusCode() != 404 {
		t.Fatal("exchange not attached")
	}

	// The payload map is copied.
	info.ExtraParameters["userId"] = "u2"
	if e.ExtraParameters["userId"] != "u1" {
		t.Fatal("payload mutation leaked into the error")
	}
}

func TestFromInfo_Incomplete(t *testing.T) {
	cases := map[string]func(*Info){
		"no message":     func(i *Info) { i.Error = "" },
		"no type":        func(i *Info) { i.ErrorType = " " },
		"no code":        func(i *Info) { i.ErrorCode = 0 },
		"no description": func(i *Info) { i.ErrorDescription = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			info := clientNotFound()
			mutate(&info)
			e, err := FromInfo(info, nil, nil)
			if !errors.Is(err, ErrIncompleteInfo) || e != nil {
				t.Fatalf("FromInfo = %v, %v; want ErrIncompleteInfo", e, err)
			}
		})
	}
}

func TestFromInfo_KeepsTypeVerbatim(t *testing.T) {
	for _, raw := range []string{"KO", "trip.not.found", "tripNotFound", "not a type!"} {
		info := clientNotFound()
		info.ErrorType = raw
		e, err := FromInfo(info, nil, nil)
		if err != nil {
			t.Fatalf("FromInfo(%q): %v", raw, err)
		}
		if string(e.Type) != raw || e.ErrorType() != raw {
			t.Fatalf("Type = %q, want %q", e.Type, raw)
		}
	}
}

func TestInfo_DecodeErrorCode(t *testing.T) {
	cases := map[string]struct {
		body     string
		complete bool
		code     int
	}{
		"present":   {`{"error":"x","error_type":"KO","error_code":404,"error_description":"d"}`, true, 404},
		"zero":      {`{"error":"x","error_type":"KO","error_code":0,"error_description":"d"}`, true, 0},
		"missing":   {`{"error":"x","error_type":"KO","error_description":"d"}`, false, 0},
		"null":      {`{"error":"x","error_type":"KO","error_code":null,"error_description":"d"}`, false, 0},
		"no fields": {`{}`, false, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var info Info
			if err := json.Unmarshal([]byte(c.body), &info); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if info.Complete() != c.complete || info.ErrorCode != c.code {
				t.Fatalf("Complete() = %v, ErrorCode = %d; want %v, %d", info.Complete(), info.ErrorCode, c.complete, c.code)
			}
			_, err := FromInfo(info, nil, nil)
			if c.complete != (err == nil) {
				t.Fatalf("FromInfo err = %v", err)
			}
		})
	}
}

func TestInfo_RoundTripKeepsCode(t *testing.T) {
	e := E(errtype.TripNotFound, "x", WithDescriptionOption("d"))
	if !e.Info().Complete() {
		t.Fatal("Info() of a domain error with code 0 must stay complete")
	}
}

func TestError_String(t *testing.T) {
	e := E(errtype.TripNotFound, "Not Found")
	if got := e.Error(); got != "TRIP_NOT_FOUND: Not Found" {
		t.Fatalf("Error() = %q", got)
	}
	e = e.WithOperation(operation.TripsCancel)
	if got := e.Error(); got != "trips.cancel:TRIP_NOT_FOUND: Not Found" {
		t.Fatalf("Error() = %q", got)
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil receiver must render <nil>")
	}
}

func TestError_CopyOnWrite(t *testing.T) {
	e1 := E(errtype.CouponNotFound, "bad", WithExtraOption("k1", 1))
	e2 := e1.WithExtra("k2", 2)
	if len(e1.ExtraParameters) != 1 || len(e2.ExtraParameters) != 2 {
		t.Fatal("extra parameters size mismatch")
	}
	e3 := e2.WithOperation(operation.CouponsCreate)
	if e2.Operation != operation.Empty || e3.Operation != operation.CouponsCreate {
		t.Fatal("WithOperation mutated the original")
	}
	extra := e3.Extra()
	extra["k1"] = "changed"
	if e3.ExtraParameters["k1"] != 1 {
		t.Fatal("Extra() must return a copy")
	}
}

func TestError_InfoRoundTrip(t *testing.T) {
	e := E(errtype.NoDriverAvailable, "Conflict",
		WithCodeOption(409),
		WithDescriptionOption("no driver around"),
		WithExtraOption("radiusKm", 5),
	)
	back, err := FromInfo(e.Info(), nil, nil)
	if err != nil {
		t.Fatalf("FromInfo(Info()): %v", err)
	}
	if back.Type != e.Type || back.Code != 409 || back.Description != "no driver around" || back.ExtraParameters["radiusKm"] != 5 {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestAsError(t *testing.T) {
	e := E(errtype.TripNotFound, "Not Found")
	wrapped := fmt.Errorf("cancel trip 42: %w", e)

	got, ok := AsError(wrapped)
	if !ok || got != e {
		t.Fatal("AsError must find a wrapped domain error")
	}
	if !IsError(e) {
		t.Fatal("IsError(domain error) = false")
	}
	if IsError(errors.New("dial tcp: i/o timeout")) {
		t.Fatal("IsError(transport error) = true")
	}
	if IsError(&Error{Type: errtype.TripNotFound}) {
		t.Fatal("a zero-kind Error must not be a domain error")
	}
	if IsError(nil) {
		t.Fatal("IsError(nil) = true")
	}
}

func TestAnnotate(t *testing.T) {
	e := E(errtype.TripNotFound, "Not Found")
	got := Annotate(e, operation.TripsCancel)
	de, ok := AsError(got)
	if !ok || de.Operation != operation.TripsCancel {
		t.Fatalf("Annotate = %v", got)
	}
	if e.Operation != operation.Empty {
		t.Fatal("Annotate mutated the original")
	}
	// Already annotated errors keep their operation.
	if again, _ := AsError(Annotate(de, operation.TripsCreate)); again.Operation != operation.TripsCancel {
		t.Fatal("Annotate must not overwrite an operation")
	}
	plain := errors.New("boom")
	if Annotate(plain, operation.TripsCancel) != plain {
		t.Fatal("Annotate must leave foreign errors untouched")
	}
}

func TestWithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(errtype.ThirdPartyCallFailed, "x", WithCauseOption(root))
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver")
	}
}

func TestParamError(t *testing.T) {
	pe := NewParamError(operation.TripsCreate, "nbPassengers", "must be at most 4").
		With("driverId", "is required")
	if !errors.Is(pe, ErrInvalidParams) {
		t.Fatal("ParamError must wrap ErrInvalidParams")
	}
	if !IsParamError(fmt.Errorf("create: %w", pe)) {
		t.Fatal("IsParamError must see through wrapping")
	}
	if IsError(pe) {
		t.Fatal("a ParamError is not a domain error")
	}
	msg := pe.Error()
	if !strings.HasPrefix(msg, "mysam: invalid request parameters for trips.create: driverId") {
		t.Fatalf("Error() = %q", msg)
	}
	if !strings.Contains(msg, "nbPassengers must be at most 4") {
		t.Fatalf("Error() = %q", msg)
	}
}
