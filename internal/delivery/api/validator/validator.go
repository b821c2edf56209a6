// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates request payloads bound by echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that reports field names by their json tag.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
// Failures are reported as ErrInvalidInput carrying the offending fields in its details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field()+":"+fieldErr.Tag())
	}

	return domainerrors.ErrInvalidInput.WithDetails(strings.Join(fields, ", "))
}
