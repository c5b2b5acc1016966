// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"elderguard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs tagged with `validate`.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the `notblank` rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]

			return errors.Errorf("%s failed on the '%s' rule", first.Field(), first.Tag())
		}

		return errors.WithStack(err)
	}

	return nil
}
