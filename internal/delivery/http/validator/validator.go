// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "pawsconnect/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the validator echo uses for c.Validate calls.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks struct tags and converts failures into the application's
// validation error so the error handler maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
