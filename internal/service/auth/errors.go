package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token structure is invalid or its
	// signature doesn't match the process-wide secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token carried an expiry claim and is
	// past it. Tokens issued without a lifetime never produce this error.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a login attempt with an unknown
	// username or a wrong password. The two cases are deliberately not
	// distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
