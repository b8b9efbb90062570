package service

import (
	"context"

	"github.com/microfund/go-microfund/models"
)

// AuthService owns account registration, credential verification and the
// token lifecycle. Passwords cross its boundary in plaintext exactly once,
// inside the request structs, and leave it only as bcrypt hashes.
type AuthService interface {
	// SignUp registers a new account. The returned user never carries the
	// password hash. Returns [store.ErrEmailAlreadyExists] if the email is
	// taken and [ErrInvalidDataProvided] on missing fields.
	SignUp(ctx context.Context, signup models.SignupRequest) (models.User, error)

	// SignIn verifies an email/password pair. Returns
	// [store.ErrNoUserWasFound] or [ErrWrongPassword]; callers must map
	// both to the same client-facing failure.
	SignIn(ctx context.Context, signin models.SigninRequest) (models.User, error)

	// UserByID resolves the account a verified token points at.
	UserByID(ctx context.Context, userID string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a compact JWT string and returns the parsed
	// token. Any verification failure is reported as
	// [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, signedToken string) (models.Token, error)
}

// LoanService owns business-loan applications.
type LoanService interface {
	// SubmitLoan validates and stores a new application on behalf of
	// applicantID, which always comes from the authenticated context.
	SubmitLoan(ctx context.Context, submit models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error)

	// ListLoans returns applications matching the filter, newest first.
	ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error)
}
