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

// Package adapter projects apierr.Error values onto the transport-neutral
// shapes declared in apis.
package adapter

import (
	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/apis"
)

// ToDescriptor converts a domain error together with its resolved transport
// status into a Descriptor for structured logging or propagation.
func ToDescriptor(e *apierr.Error, st apis.Status) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	return apis.Descriptor{
		Type:        string(e.Type),
		Operation:   string(e.Operation),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
		Message:     e.Message,
		Description: e.Description,
	}
}

// ToView converts a domain error into the public ErrorView. Nothing is
// redacted; extra parameters are copied as-is.
func ToView(e *apierr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return e.ErrorView()
}
