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

	"dirpx.dev/mysam/operation"
)

// AsError finds the first domain error in err's chain.
//
// Only errors of KindDomain qualify, so a hand-built zero-value *Error is not
// mistaken for a backend failure.
func AsError(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) || e == nil || e.Kind != KindDomain {
		return nil, false
	}
	return e, true
}

// IsError reports whether err's chain contains a domain error.
func IsError(err error) bool {
	_, ok := AsError(err)
	return ok
}

// Annotate tags a domain error with the operation that produced it.
//
// When err is a domain error that is not annotated yet, a copy carrying op is
// returned. Every other error, including transport failures, is returned
// unchanged.
func Annotate(err error, op operation.Operation) error {
	e, ok := err.(*Error)
	if !ok || e == nil || e.Kind != KindDomain || e.Operation != operation.Empty {
		return err
	}
	return e.WithOperation(op)
}
