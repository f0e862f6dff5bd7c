package handlers

import (
	"errors"
	"net/http"

	"github.com/diegoclair/shift-timeslots/internal/domain"
)

// statusFor maps a domain error kind to the HTTP status reported to callers.
// Anything that is not a domain error is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPastWeek):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSourceNotConfigured):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvariantViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides the text of unexpected errors, which may carry SQL details.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "something went wrong, please try again"
	}
	return err.Error()
}
