package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrMissingPassword    = errors.New("password is required")
	ErrUnsupportedMode    = errors.New("unsupported auth mode")
)
