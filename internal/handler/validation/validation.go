package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"glamping-api/internal/usecase/shared"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterTagNames makes validator report fields by their json/form name.
func RegisterTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(tagName)
	})
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// FieldErrors converts a binding failure into per-field messages.
// ok is false when err is not a field-level problem (e.g. malformed JSON).
func FieldErrors(err error) (shared.FieldErrors, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := shared.FieldErrors{}
		for _, fe := range verrs {
			out.Add(fieldPath(fe), message(fe))
		}
		return out, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		return shared.FieldErrors{field: {fmt.Sprintf("The %s field must be a %s.", label(field), typeErr.Type.String())}}, true
	}
	return nil, false
}

// fieldPath drops the struct name prefix from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func message(fe validator.FieldError) string {
	l := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", l)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", l)
	case "uuid":
		return fmt.Sprintf("The %s field must be a valid UUID.", l)
	case "datetime":
		return fmt.Sprintf("The %s field must match the format %s.", l, "Y-m-d")
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", l)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", l, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", l, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", l, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", l, fe.Param())
	}
	return fmt.Sprintf("The %s field is invalid.", l)
}
