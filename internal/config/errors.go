package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was supplied
	// by any configuration source. The server refuses to start rather than
	// fall back to a weak or hard-coded secret.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrUnsupportedDBDriver indicates a driver other than "pgx" or "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
)
