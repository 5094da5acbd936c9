package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/calderb/inkblot/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct-tag validation and converts failures into
// domain.ErrInvalidInput so callers can match with errors.Is.
func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		fe := invalid[0]
		return fmt.Errorf("%w: field %s failed on %s", domain.ErrInvalidInput, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}
