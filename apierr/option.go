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

import "dirpx.dev/mysam/operation"

// Option is a functional option for constructing or transforming an Error.
type Option func(*Error) *Error

// WithCodeOption sets the numeric payload code.
func WithCodeOption(code int) Option {
	return func(e *Error) *Error {
		cp := *e
		cp.Code = code
		return &cp
	}
}

// WithDescriptionOption sets the description on construction.
func WithDescriptionOption(desc string) Option {
	return func(e *Error) *Error {
		return e.WithDescription(desc)
	}
}

// WithExtraOption adds a single extra parameter on construction.
func WithExtraOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithExtra(k, v)
	}
}

// WithOperationOption annotates the error with op on construction.
func WithOperationOption(op operation.Operation) Option {
	return func(e *Error) *Error {
		return e.WithOperation(op)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
