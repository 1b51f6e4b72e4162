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

// Package validate wraps go-playground/validator for request shapes.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"dirpx.dev/mysam/apierr"
	"dirpx.dev/mysam/operation"
)

// std is shared: validator.Validate caches struct metadata and is safe for
// concurrent use.
var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report wire names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags. Failures are returned as
// an *apierr.ParamError for op.
func Struct(op operation.Operation, s any) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", op, err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = message(fe)
	}
	return &apierr.ParamError{Operation: op, Fields: fields}
}

// fieldName drops the root struct name from the namespace, so nested fields
// read "fromAddress.latitude". Embedded structs are inlined on the wire, so
// their Go names are dropped too.
func fieldName(fe validator.FieldError) string {
	segs := strings.Split(fe.Namespace(), ".")
	if len(segs) < 2 {
		return fe.Field()
	}
	segs = segs[1:]
	kept := segs[:0]
	for i, s := range segs {
		if i < len(segs)-1 && s != "" && unicode.IsUpper(rune(s[0])) {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, ".")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "email":
		return "must be a valid email address"
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	default:
		return "failed on " + fe.Tag()
	}
}
