package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is present
	// but does not carry a "Bearer <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Client-facing response messages. Their wording is part of the API
// contract and must not change between releases.
const (
	msgNotLoggedIn      = "You are not logged in. Please log in to get access"
	msgAuthFailed       = "Authentication failed"
	msgUserGone         = "The user belonging to this token no longer exists"
	msgWrongCredentials = "Incorrect email or password"
)
