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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
	"dirpx.dev/mysam/status"
)

func call(t *testing.T, ic grpc.UnaryServerInterceptor, herr error) error {
	t.Helper()
	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/mysam.Trips/Cancel"},
		func(context.Context, any) (any, error) { return nil, herr })
	return err
}

func TestInterceptor_DomainError(t *testing.T) {
	de := apierr.E(errtype.TripNotFound, "trip not found",
		apierr.WithCodeOption(4040),
		apierr.WithDescriptionOption("no trip 42"),
		apierr.WithOperationOption(operation.TripsCancel),
	)
	ic := UnaryServerInterceptor(nil, func(context.Context, *apierr.Error) Extras {
		return Extras{RequestID: "req-1", RetryDelay: 2 * time.Second}
	})

	err := call(t, ic, fmt.Errorf("handler: %w", de))
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != codes.NotFound || st.Message() != "trip not found" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}

	ei, ok := ExtractInfo(err)
	if !ok {
		t.Fatalf("ErrorInfo missing")
	}
	if ei.GetReason() != "TRIP_NOT_FOUND" || ei.GetDomain() != Domain {
		t.Fatalf("ErrorInfo = %v", ei)
	}
	md := ei.GetMetadata()
	if md[MetaOperation] != "trips.cancel" || md[MetaCode] != "4040" || md[MetaDescription] != "no trip 42" {
		t.Fatalf("metadata = %v", md)
	}

	var sawReq, sawRetry bool
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.RequestInfo:
			sawReq = v.GetRequestId() == "req-1"
		case *errdetails.RetryInfo:
			sawRetry = v.GetRetryDelay().AsDuration() == 2*time.Second
		}
	}
	if !sawReq || !sawRetry {
		t.Fatalf("extras missing: request=%v retry=%v", sawReq, sawRetry)
	}
}

func TestInterceptor_UsesMapper(t *testing.T) {
	m := status.MustNew(status.WithGRPCOperation(errtype.TripNotFound, "trips.cancel", int(codes.FailedPrecondition)))
	de := apierr.E(errtype.TripNotFound, "x", apierr.WithOperationOption(operation.TripsCancel))

	err := call(t, UnaryServerInterceptor(m, nil), de)
	if gstatus.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v", gstatus.Code(err))
	}
}

func TestInterceptor_ParamError(t *testing.T) {
	pe := apierr.NewParamError(operation.TripsCreate, "vehicle.numberOfPassengers", "must be at most 4").
		With("assignment.driverId", "is required")

	err := call(t, UnaryServerInterceptor(nil, nil), pe)
	if gstatus.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v", gstatus.Code(err))
	}
	br, ok := ExtractBadRequest(err)
	if !ok || len(br.GetFieldViolations()) != 2 {
		t.Fatalf("BadRequest = %v", br)
	}
	if br.GetFieldViolations()[0].GetField() != "assignment.driverId" {
		t.Fatalf("violations not sorted: %v", br.GetFieldViolations())
	}
	if _, ok := ExtractInfo(err); ok {
		t.Fatalf("ParamError must not carry ErrorInfo")
	}
}

func TestInterceptor_PassThrough(t *testing.T) {
	ic := UnaryServerInterceptor(nil, nil)

	plain := errors.New("boom")
	if err := call(t, ic, plain); err != plain {
		t.Fatalf("non-domain error must pass through; got %v", err)
	}
	if err := call(t, ic, nil); err != nil {
		t.Fatalf("nil error must stay nil; got %v", err)
	}
}

func TestExtractInfo_NotStatus(t *testing.T) {
	if _, ok := ExtractInfo(errors.New("x")); ok {
		t.Fatalf("plain error has no ErrorInfo")
	}
	if _, ok := ExtractInfo(nil); ok {
		t.Fatalf("nil has no ErrorInfo")
	}
}
