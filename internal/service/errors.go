package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or contains values outside their allowed ranges.
	ErrInvalidDataProvided = errors.New("service error: invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash. Callers must report it the same way as an unknown
	// email so that account existence is not revealed.
	ErrWrongPassword = errors.New("service error: wrong password")

	// ErrTokenIsExpiredOrInvalid covers every token verification failure:
	// bad signature, wrong issuer, malformed string or expired claims.
	ErrTokenIsExpiredOrInvalid = errors.New("service error: token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("service error: token creation failed")
)
