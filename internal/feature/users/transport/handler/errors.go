// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"errors"
	"net/http"

	"auth_backend/internal/feature/users/usecase"
)

// statusFor maps a usecase error to an HTTP status and a client-safe message.
// Errors outside the known categories are reported as 500 without details.
func statusFor(err error) (int, string) {
	var authErr *usecase.AuthError
	switch {
	case errors.Is(err, usecase.ErrNotFound) && errors.As(err, &authErr):
		return http.StatusNotFound, authErr.Error()
	case errors.Is(err, usecase.ErrBadRequest) && errors.As(err, &authErr):
		return http.StatusBadRequest, authErr.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
