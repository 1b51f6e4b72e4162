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

// Package httpx writes MySAM errors as HTTP JSON responses.
//
// The body follows the backend payload shape (error, error_type, error_code,
// error_description, extraParameters) so a service proxying MySAM can relay
// failures without inventing a second format.
package httpx

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/apis"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/status"
)

// UnknownType is reported for failures that carry no backend error type.
const UnknownType errtype.Type = "UNKNOWN_ERROR"

// Meta carries extra context the HTTP layer can add on top of the error.
// All fields are optional.
type Meta struct {
	Correlation       string
	RetryAfterSeconds int
}

// Writer turns MySAM errors into HTTP responses using Mapper for the status.
// A nil Mapper means status.Default.
type Writer struct {
	Mapper apis.Mapper
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return status.Default
	}
	return w.Mapper
}

// Write serializes err in the backend payload shape. The status comes from
// the mapper, keyed by the error type and operation.
func (w Writer) Write(rw http.ResponseWriter, err *apierr.Error, meta Meta) {
	if err == nil {
		return
	}
	st := w.mapper().Status(err.Type, err.Operation)
	w.write(rw, st.HTTP, err.ErrorView(), meta)
}

// WriteError handles any error: domain errors go through Write, invalid
// request parameters become 400 BAD_REQUEST_PARAMETER with the offending
// fields as extra parameters, and everything else uses the mapper fallback.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	if de, ok := apierr.AsError(err); ok {
		w.Write(rw, de, meta)
		return
	}

	var pe *apierr.ParamError
	if errors.As(err, &pe) {
		extra := make(map[string]any, len(pe.Fields))
		for k, v := range pe.Fields {
			extra[k] = v
		}
		w.write(rw, http.StatusBadRequest, apis.ErrorView{
			Error:            "invalid request parameters",
			ErrorType:        string(errtype.BadRequestParameter),
			ErrorDescription: pe.Error(),
			ExtraParameters:  extra,
			Operation:        string(pe.Operation),
		}, meta)
		return
	}

	w.write(rw, w.mapper().HTTPStatus(UnknownType, ""), apis.ErrorView{
		Error:            http.StatusText(http.StatusInternalServerError),
		ErrorType:        string(UnknownType),
		ErrorDescription: err.Error(),
	}, meta)
}

func (w Writer) write(rw http.ResponseWriter, code int, v apis.ErrorView, meta Meta) {
	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(code)
	_, _ = rw.Write(encode(v))
}

// encode renders v through structpb so nested extra parameters keep their
// JSON shape; values structpb cannot represent fall back to go-json.
func encode(v apis.ErrorView) []byte {
	fields := map[string]any{
		"error":             v.Error,
		"error_type":        v.ErrorType,
		"error_code":        v.ErrorCode,
		"error_description": v.ErrorDescription,
	}
	if len(v.ExtraParameters) > 0 {
		fields["extraParameters"] = v.ExtraParameters
	}
	if v.Operation != "" {
		fields["operation"] = v.Operation
	}

	if s, err := structpb.NewStruct(fields); err == nil {
		if b, err := protojson.Marshal(s); err == nil {
			return b
		}
	}
	b, _ := json.Marshal(v)
	return b
}
