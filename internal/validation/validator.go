// Package validation wraps go-playground/validator with the rules and
// messages used across the service.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"vegfeedback/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs and turns failures into
// apperrors validation errors with a readable message.
type Validator struct {
	validate    *validator.Validate
	emailDomain string
}

// New creates a Validator. emailDomain is the suffix every registered
// email must carry, e.g. "@bitwardha.ac.in".
func New(emailDomain string) *Validator {
	v := &Validator{
		validate:    validator.New(),
		emailDomain: emailDomain,
	}
	v.validate.RegisterTagNameFunc(jsonFieldName)
	// RegisterValidation only fails for an empty tag or nil func.
	_ = v.validate.RegisterValidation("emaildomain", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(strings.ToLower(fl.Field().String()), strings.ToLower(v.emailDomain))
	})
	return v
}

// EmailDomain returns the configured institutional suffix.
func (v *Validator) EmailDomain() string {
	return v.emailDomain
}

// Struct validates s. The first failing field decides the message.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Validation("Invalid request")
	}
	return apperrors.Validation(v.message(validationErrors[0]))
}

func (v *Validator) message(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter a valid email address"
	case "emaildomain":
		return fmt.Sprintf("Email must end with %s", v.emailDomain)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must contain at least %s items", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}
