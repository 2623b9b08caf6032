package usecase

import (
	"errors"
	"fmt"

	"cab-dispatch/pkg/utils"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)

// validate runs struct validation and wraps failures in ErrInvalidArgument.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), ErrInvalidArgument)
	}
	return nil
}
