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

package models

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// coerceTime converts a decoded JSON date into a time.Time. Null and blank
// values give the zero time. Numbers are epoch milliseconds, as the backend
// emits them; strings go through cast.
func coerceTime(field string, v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return time.Time{}, nil
		}
	case float64, int, int64, json.Number:
		ms, err := cast.ToInt64E(x)
		if err != nil {
			return time.Time{}, fmt.Errorf("models: %s: %w", field, err)
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("models: %s: %w", field, err)
	}
	return t, nil
}

// coerceOptionalTime is coerceTime for fields that are absent in some states.
func coerceOptionalTime(field string, v any) (*time.Time, error) {
	t, err := coerceTime(field, v)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}
