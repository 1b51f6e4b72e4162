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

package status

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/mysam/errtype"
)

type opRule struct {
	// prefix is the raw operation prefix (may contain "*"); validated when the
	// per-type trie is built.
	prefix string
	val    int
}

type builder struct {
	httpDefaults map[errtype.Type]int
	grpcDefaults map[errtype.Type]int

	httpOverride map[errtype.Type]int
	grpcOverride map[errtype.Type]int

	httpOps map[errtype.Type][]opRule
	grpcOps map[errtype.Type][]opRule

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[errtype.Type]int, len(defaultHTTP)),
		grpcDefaults: make(map[errtype.Type]int, len(defaultGRPC)),

		httpOverride: make(map[errtype.Type]int),
		grpcOverride: make(map[errtype.Type]int),
		httpOps:      make(map[errtype.Type][]opRule),
		grpcOps:      make(map[errtype.Type][]opRule),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
