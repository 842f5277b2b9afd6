// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// New builds a validator that reports JSON field names and understands the
// notblank tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: v}
}

// Validate validates a request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// Describe flattens validation errors into field errors. Other errors yield nil.
func Describe(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return fields
}
