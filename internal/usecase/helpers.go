package usecase

import (
	"errors"
	"strings"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"
	"go-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// validateInput runs struct validation and converts failures into a form error.
func validateInput(v *validator.Validate, input any) error {
	if err := v.Struct(input); err != nil {
		return apperror.Validation(validation.FieldErrors(err))
	}
	return nil
}

// wrapRepoErr turns ErrNotFound into a 404 with msg, keeps AppErrors, and hides the rest behind a 500.
func wrapRepoErr(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
