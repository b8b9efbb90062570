package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with database-assigned fields (CreatedAt).
//
// The INSERT returns all non-credential columns via a RETURNING clause, so
// the caller receives the canonical database representation of the account
// without the hash ever travelling back out.
//
// Error handling:
//   - unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.FullName, user.Email, user.PhoneNumber, user.AccountType, user.PasswordHash)

	created := models.User{}
	if err := row.Scan(&created.ID, &created.FullName, &created.Email,
		&created.PhoneNumber, &created.AccountType, &created.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("duplicate email")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves a user record whose email matches exactly
// (byte-for-byte, no case folding).
//
// The default projection excludes the password hash; the hash-including
// query is used only when includeHash is true, i.e. on the credential
// verification path.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string, includeHash bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query := findUserByEmail
	if includeHash {
		query = findUserByEmailWithHash
	}

	row := r.db.QueryRowContext(ctx, query, email)

	var foundUser models.User
	var err error
	if includeHash {
		err = row.Scan(&foundUser.ID, &foundUser.FullName, &foundUser.Email,
			&foundUser.PhoneNumber, &foundUser.AccountType, &foundUser.PasswordHash, &foundUser.CreatedAt)
	} else {
		err = row.Scan(&foundUser.ID, &foundUser.FullName, &foundUser.Email,
			&foundUser.PhoneNumber, &foundUser.AccountType, &foundUser.CreatedAt)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its opaque identifier. The
// password hash is never part of this projection; the access guard only
// needs to confirm the account still exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	var foundUser models.User
	if err := row.Scan(&foundUser.ID, &foundUser.FullName, &foundUser.Email,
		&foundUser.PhoneNumber, &foundUser.AccountType, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
