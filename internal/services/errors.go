package services

import (
	"errors"
	"fmt"
)

// Sentinel errors every public operation maps its failures onto. The HTTP
// layer translates these to status codes; nothing else crosses the API
// boundary.
var (
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
