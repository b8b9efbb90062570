package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/microfund/go-microfund/internal/config"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/store"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

// authService is the default [AuthService] implementation. It hashes
// passwords with bcrypt, delegates persistence to a [store.UserRepository]
// and issues HS256 JWT tokens via the utils package.
type authService struct {
	logger         *logger.Logger
	userRepository store.UserRepository
	idGenerator    *utils.UUIDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	bcryptCost    int
}

// NewAuthService constructs an [AuthService] from the given repository and
// application config. A zero cfg.BcryptCost falls back to
// bcrypt.DefaultCost.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		logger:         logger,
		userRepository: userRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cost,
	}
}

// SignUp hashes the password, assigns a fresh identifier and persists the
// account. The plaintext password is never logged and the returned user
// never carries the hash.
func (s *authService) SignUp(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateSignup(signup); err != nil {
		log.Warn().Str("func", "*authService.SignUp").Msg("signup rejected: invalid data")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(signup.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("error: password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.idGenerator.Generate(),
		FullName:     signup.FullName,
		Email:        signup.Email,
		PhoneNumber:  signup.PhoneNumber,
		AccountType:  signup.AccountType,
		PasswordHash: string(hash),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	log.Info().Str("func", "*authService.SignUp").Str("user_id", created.ID).Msg("account registered")
	return created.Public(), nil
}

// SignIn verifies the email/password pair against the stored bcrypt hash.
// bcrypt.CompareHashAndPassword is constant-time with respect to the
// password, so response timing does not leak hash contents.
func (s *authService) SignIn(ctx context.Context, signin models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if signin.Email == "" || signin.Password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	found, err := s.userRepository.FindUserByEmail(ctx, signin.Email, true)
	if err != nil {
		return models.User{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(signin.Password)); err != nil {
		log.Warn().Str("func", "*authService.SignIn").Str("user_id", found.ID).Msg("signin rejected: password mismatch")
		return models.User{}, ErrWrongPassword
	}

	return found.Public(), nil
}

// UserByID resolves the account a verified token points at.
func (s *authService) UserByID(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("%w: empty user id", ErrInvalidDataProvided)
	}

	found, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return found, nil
}

// CreateToken issues a signed HS256 JWT whose subject is the user ID.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("error: token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature, issuer and expiry of a compact JWT
// string. Every verification failure collapses into
// [ErrTokenIsExpiredOrInvalid] so the caller cannot distinguish why a token
// was rejected.
func (s *authService) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(signedToken, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Warn().Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func validateSignup(signup models.SignupRequest) error {
	switch {
	case signup.FullName == "":
		return fmt.Errorf("%w: full name is required", ErrInvalidDataProvided)
	case signup.Email == "" || !strings.Contains(signup.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrInvalidDataProvided)
	case signup.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	return nil
}
