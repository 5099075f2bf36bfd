package common

import "errors"

var (
	// ErrInvalidToken reports a token that cannot be parsed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingRefreshToken reports an authentication result without the
	// refresh token a session requires.
	ErrMissingRefreshToken = errors.New("missing refresh token")

	// ErrMissingUser reports an authentication result without a user
	// identity.
	ErrMissingUser = errors.New("missing user")
)
