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

// Package rest is the transport boundary of the MySAM SDK.
//
// Endpoint clients depend only on the Client interface. HTTPClient is the
// default implementation: it talks JSON to https://{subdomain}.mysam.fr/api,
// authenticates every request with the X-Api-Key header, and converts
// failed responses exactly once:
//
//   - a complete backend payload becomes an *apierr.Error;
//   - any other non-2xx response becomes an *HTTPError;
//   - network failures are returned wrapped with %w.
//
// Callers control cancellation and deadlines through the context.
package rest
