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

package bills

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/rest/resttest"
)

func TestDownloadInvoice(t *testing.T) {
	pdf := []byte("%PDF-1.4")
	f := resttest.New().Bytes(http.MethodGet, "/bills/trip/42", pdf)

	got, err := New(f).DownloadInvoice(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestDownloadInvoice_EscapesID(t *testing.T) {
	f := resttest.New()
	_, _ = New(f).DownloadInvoice(context.Background(), "a/b")
	assert.Equal(t, "/bills/trip/a%2Fb", f.Last().Path)
}

func TestDownloadInvoice_EmptyID(t *testing.T) {
	f := resttest.New()
	_, err := New(f).DownloadInvoice(context.Background(), "")
	assert.ErrorIs(t, err, apierr.ErrInvalidParams)
	assert.Empty(t, f.Calls())
}
