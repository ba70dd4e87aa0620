// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"devicestore/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request bodies using struct tags.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with required-struct checks enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
