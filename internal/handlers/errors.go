package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"petmatch/internal/apperrors"
)

// errorStatus maps the shared error taxonomy to HTTP status codes. Unknown
// errors are treated as internal failures.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthentication):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// validationMessages flattens validator errors into a field-to-message map
// for the response body.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
