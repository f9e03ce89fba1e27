package service

import (
	"fmt"

	"github.com/campuslink/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct wraps validator failures in the shared validation sentinel
// so handlers can map them uniformly.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
