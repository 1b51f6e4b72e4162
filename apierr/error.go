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

	"dirpx.dev/mysam/apis"
	"dirpx.dev/mysam/errtype"
	"dirpx.dev/mysam/operation"
)

// Kind discriminates the concrete error variants of the SDK.
type Kind uint8

const (
	// KindUnknown is the zero value. An *Error of this kind was not built by
	// this package and is not treated as a domain error.
	KindUnknown Kind = iota
	// KindDomain marks a backend-reported business-rule failure.
	KindDomain
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

var (
	_ apis.TypedError     = (*Error)(nil)
	_ apis.OperationError = (*Error)(nil)
	_ apis.DetailedError  = (*Error)(nil)
	_ apis.ViewProvider   = (*Error)(nil)
)

// ErrIncompleteInfo is returned by FromInfo when the payload lacks the
// message, type or description triple.
var ErrIncompleteInfo = errors.New("mysam: incomplete error payload")

// Error is a business-rule failure reported by the MySAM backend.
//
// It carries:
//   - Type: the backend error type as sent, the value classifiers match on;
//   - Code: the numeric code from the payload (usually the HTTP status);
//   - Message / Description: human-oriented texts from the payload;
//   - ExtraParameters: optional free-form payload data;
//   - Operation: the endpoint operation that failed, when annotated;
//   - Request / Response: the originating exchange, for diagnostics only.
//
// All mutation helpers (WithX) return a shallow copy, so values can be shared
// between goroutines.
type Error struct {
	Kind Kind

	Type        errtype.Type
	Code        int
	Message     string
	Description string

	// ExtraParameters is treated as immutable: constructors copy it and Extra
	// returns a copy.
	ExtraParameters map[string]any

	Operation operation.Operation

	// Request and Response are never inspected by the SDK. The response body
	// has already been consumed.
	Request  *http.Request
	Response *http.Response

	// Cause holds a wrapped underlying error, if any.
	Cause error
}

// E builds a domain error of the given type and applies opts in order.
//
// Usage:
//
//	return apierr.E(errtype.TripNotFound, "Not Found",
//	    apierr.WithCodeOption(404),
//	    apierr.WithDescriptionOption("trip 42 does not exist"),
//	)
func E(t errtype.Type, msg string, opts ...Option) *Error {
	e := &Error{Kind: KindDomain, Type: t, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromInfo builds a domain error from a backend payload and the exchange it
// came with. The error type is kept exactly as sent, even when it is not in
// canonical form. It returns ErrIncompleteInfo when the payload is not
// complete; the caller must then surface the original transport failure.
func FromInfo(info Info, req *http.Request, resp *http.Response) (*Error, error) {
	if !info.Complete() {
		return nil, ErrIncompleteInfo
	}
	return &Error{
		Kind:            KindDomain,
		Type:            errtype.Type(info.ErrorType),
		Code:            info.ErrorCode,
		Message:         info.Error,
		Description:     info.ErrorDescription,
		ExtraParameters: cloneMap(info.ExtraParameters),
		Request:         req,
		Response:        resp,
	}, nil
}

// Error implements the built-in error interface.
//
// The format is
//
//	<type>: <message>
//
// or, when the error was annotated with an operation,
//
//	<operation>:<type>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Operation != operation.Empty {
		return fmt.Sprintf("%s:%s: %s", e.Operation, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorType returns the backend error type as a string.
func (e *Error) ErrorType() string { return string(e.Type) }

// ErrorCode returns the numeric code from the payload.
func (e *Error) ErrorCode() int { return e.Code }

// ErrorOperation returns the annotated operation as a string.
func (e *Error) ErrorOperation() string { return string(e.Operation) }

// Extra returns a copy of the extra parameters, or nil.
func (e *Error) Extra() map[string]any { return cloneMap(e.ExtraParameters) }

// Info rebuilds the backend payload this error represents.
func (e *Error) Info() Info {
	return Info{
		Error:            e.Message,
		ErrorType:        string(e.Type),
		ErrorCode:        e.Code,
		ErrorDescription: e.Description,
		ExtraParameters:  cloneMap(e.ExtraParameters),
		hasCode:          true,
	}
}

// ErrorView renders e in the backend payload shape.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Error:            e.Message,
		ErrorType:        string(e.Type),
		ErrorCode:        e.Code,
		ErrorDescription: e.Description,
		ExtraParameters:  cloneMap(e.ExtraParameters),
		Operation:        string(e.Operation),
	}
}

// StatusCode returns the HTTP status of the originating response, or 0 when
// the error was not built from a response.
func (e *Error) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// WithOperation returns a shallow copy of e annotated with op.
func (e *Error) WithOperation(op operation.Operation) *Error {
	cp := *e
	cp.Operation = op
	return &cp
}

// WithDescription returns a shallow copy of e with a replaced description.
func (e *Error) WithDescription(desc string) *Error {
	cp := *e
	cp.Description = desc
	return &cp
}

// WithExtra returns a shallow copy of e with one more extra parameter. The
// map is always copied.
func (e *Error) WithExtra(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.ExtraParameters)+1)
	for k0, v0 := range cp.ExtraParameters {
		m[k0] = v0
	}
	m[k] = v
	cp.ExtraParameters = m
	return &cp
}

// WithExchange returns a shallow copy of e attached to the given exchange.
func (e *Error) WithExchange(req *http.Request, resp *http.Response) *Error {
	cp := *e
	cp.Request = req
	cp.Response = resp
	return &cp
}

// WithCause returns a shallow copy of e with the given cause attached.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}
		out[k] = v
	}
	return out
}
