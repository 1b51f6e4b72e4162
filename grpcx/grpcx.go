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

// Package grpcx converts MySAM errors into gRPC statuses for services that
// expose MySAM-backed operations over gRPC.
package grpcx

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/apis"
	"dirpx.dev/mysam/status"
)

// Domain is the ErrorInfo domain attached to every converted error.
const Domain = "mysam.fr"

// Metadata keys set on ErrorInfo.
const (
	MetaOperation   = "operation"
	MetaCode        = "error_code"
	MetaDescription = "error_description"
)

// Extras holds optional metadata attached next to ErrorInfo.
type Extras struct {
	// RequestID is attached as errdetails.RequestInfo.
	RequestID string

	// RetryDelay, when positive, is attached as errdetails.RetryInfo.
	RetryDelay time.Duration
}

// MetaFn extracts Extras from the request context and the domain error.
type MetaFn func(ctx context.Context, e *apierr.Error) Extras

// UnaryServerInterceptor maps handler errors into gRPC statuses:
//
//   - MySAM domain errors (wrapped or not) get the mapper's code and an
//     errdetails.ErrorInfo whose Reason is the backend error type;
//   - invalid request parameters become InvalidArgument with a BadRequest
//     detail listing the offending fields;
//   - anything else is returned unchanged.
//
// A nil mapper means status.Default.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if m == nil {
		m = status.Default
	}
	if metaFn == nil {
		metaFn = func(context.Context, *apierr.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if de, ok := apierr.AsError(err); ok {
			return nil, FromError(m, de, metaFn(ctx, de))
		}
		var pe *apierr.ParamError
		if errors.As(err, &pe) {
			return nil, fromParamError(pe)
		}
		return nil, err
	}
}

// FromError converts a domain error into a gRPC status error.
func FromError(m apis.Mapper, de *apierr.Error, ex Extras) error {
	if m == nil {
		m = status.Default
	}
	code := m.GRPCStatus(de.Type, de.Operation)

	meta := map[string]string{
		MetaCode: strconv.Itoa(de.Code),
	}
	if de.Operation != "" {
		meta[MetaOperation] = string(de.Operation)
	}
	if de.Description != "" {
		meta[MetaDescription] = de.Description
	}

	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{Reason: string(de.Type), Domain: Domain, Metadata: meta},
	}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if ex.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}

	base := gstatus.New(code, de.Message)
	if with, err := base.WithDetails(details...); err == nil {
		return with.Err()
	}
	return base.Err()
}

func fromParamError(pe *apierr.ParamError) error {
	fields := make([]string, 0, len(pe.Fields))
	for f := range pe.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	br := &errdetails.BadRequest{}
	for _, f := range fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f,
			Description: pe.Fields[f],
		})
	}

	base := gstatus.New(gcodes.InvalidArgument, pe.Error())
	if with, err := base.WithDetails(br); err == nil {
		return with.Err()
	}
	return base.Err()
}

// ExtractInfo pulls the MySAM ErrorInfo out of a gRPC error, if present.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls field violations out of a gRPC error, if present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}
