package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/melisaydin/shop-backend/internal/api/httpx"
	"github.com/melisaydin/shop-backend/internal/services"
)

// writeErr maps service failures onto the HTTP surface. Anything outside the
// taxonomy is a 500 with a generic body; the detail stays in the log.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		httpx.WriteError(w, http.StatusBadRequest, "conflict", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_credentials", "invalid credentials", nil)
	case errors.Is(err, services.ErrInvalidOTP):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_otp", "invalid or expired OTP", nil)
	case errors.Is(err, services.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication failed", nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func badJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "validation_error", "malformed JSON body", nil)
}
