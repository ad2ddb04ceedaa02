package services

import (
	"errors"
	"fmt"

	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/ports"
)

// repoError maps repository sentinels onto typed application errors.
func repoError(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ports.ErrNotFound):
		return apperrors.Newf(apperrors.CodeNotFound, "%s %q not found", entity, id)
	case errors.Is(err, ports.ErrDuplicate):
		return apperrors.Newf(apperrors.CodeConflict, "%s %q already exists", entity, id).
			WithDetails(map[string]string{"id": id})
	default:
		return fmt.Errorf("%s %q: %w", entity, id, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ports.ErrNotFound)
}

func validationError(message string, details any) error {
	return apperrors.New(apperrors.CodeValidation, message).WithDetails(details)
}

// fieldErrors collects per-field validation messages.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return validationError("invalid input", f)
}
