package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/errs"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/lib/utils"
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payloads that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that cannot be expressed with struct tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags. Field names in the
// returned errors follow the `json` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// DecodeAndValidate decodes body into payload and validates it.
//
// Both decode and validation failures become the same 400 "Invalid JSON data"
// error, with field-level errors when the failing field is known.
func DecodeAndValidate(body []byte, payload Validatable) error {
	if err := json.Unmarshal(body, payload); err != nil {
		return errs.NewInvalidJSONError(decodeFieldErrors(err))
	}

	// encoding/json matches keys case-insensitively; the API does not.
	if fieldErrors := keyCaseErrors(body, reflect.TypeOf(payload)); fieldErrors != nil {
		return errs.NewInvalidJSONError(fieldErrors)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewInvalidJSONError(fieldErrors)
	}

	return nil
}

// keyCaseErrors reports object keys that name a field only when compared
// case-insensitively, e.g. "SENDER" for "sender".
func keyCaseErrors(body []byte, t reflect.Type) []errs.FieldError {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil
	}
	return walkKeyCase(doc, t, "")
}

func walkKeyCase(v any, t reflect.Type, prefix string) []errs.FieldError {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	obj, ok := v.(map[string]any)
	if !ok || t.Kind() != reflect.Struct {
		return nil
	}

	fields := jsonFields(t)

	var fieldErrors []errs.FieldError
	for _, key := range utils.SortedKeys(obj) {
		if ft, ok := fields[key]; ok {
			fieldErrors = append(fieldErrors, walkKeyCase(obj[key], ft, prefix+key+".")...)
			continue
		}

		for _, name := range utils.SortedKeys(fields) {
			if strings.EqualFold(name, key) {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: prefix + key,
					Error: fmt.Sprintf("unknown field, did you mean %q", name),
				})
				break
			}
		}
	}

	return fieldErrors
}

// jsonFields maps the JSON names of t's exported fields to their types.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = f.Type
	}
	return fields
}

func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func decodeFieldErrors(err error) []errs.FieldError {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	return []errs.FieldError{{
		Field: typeErr.Field,
		Error: fmt.Sprintf("must be %s", describeKind(typeErr.Type)),
	}}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "valid"
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "valid"
	}
}

// fieldPath drops the root struct name from a validator namespace:
// "CreateParcelRequest.sender.name" -> "sender.name".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := fieldPath(err.Namespace())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
