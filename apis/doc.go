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

// Package apis defines the small contracts the MySAM error adapters target.
//
// The HTTP and gRPC adapters, the status mapper and callers that log or
// relay backend failures depend on these interfaces and view types rather
// than on the concrete *apierr.Error. This keeps the adapters usable with any
// error that reports a backend error type.
//
// This package must stay lightweight: interfaces and small view types only.
package apis
