package store

import (
	"context"

	"github.com/microfund/go-microfund/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary of the credential store.
// Implementations enforce email uniqueness atomically at the database level
// and exclude the password hash from projections unless it is explicitly
// requested for credential verification.
type UserRepository interface {
	// CreateUser persists a new account. The caller supplies the ID and the
	// already-hashed password. Returns [ErrEmailAlreadyExists] if the email
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail performs an exact-match, case-sensitive lookup.
	// The password hash is included only when includeHash is true.
	// Returns [ErrNoUserWasFound] if no account matches.
	FindUserByEmail(ctx context.Context, email string, includeHash bool) (models.User, error)

	// FindUserByID resolves an account by its opaque identifier, without
	// the password hash. Returns [ErrNoUserWasFound] if no account matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// LoanRepository persists and lists business-loan applications.
type LoanRepository interface {
	// CreateLoan persists a new application. The caller supplies the ID and
	// the applicant reference.
	CreateLoan(ctx context.Context, loan models.BusinessLoan) (models.BusinessLoan, error)

	// ListLoans returns applications matching the filter, newest first.
	ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error)
}
