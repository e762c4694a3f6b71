package auth

import "errors"

// Authentication failures. Handlers map each one to a fixed status and
// message, so callers should match with errors.Is.
var (
	ErrMissingCredentials    = errors.New("missing credentials")
	ErrUnknownUser           = errors.New("unknown user")
	ErrPasswordMismatch      = errors.New("password mismatch")
	ErrPasswordTooLong       = errors.New("password exceeds 72 bytes")
	ErrMissingToken          = errors.New("token is missing")
	ErrInvalidOrExpiredToken = errors.New("token is invalid or expired")
	ErrUnknownSubject        = errors.New("token subject no longer exists")
)
