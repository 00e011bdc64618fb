package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names by their json tag
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &CustomValidator{validate: v}
}

// Validate runs the struct's validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}
