package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key and the database DSN are required and have no built-in
// defaults: embedding them in source or shipping weak fallbacks is exactly
// the failure mode this check exists to prevent.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrUnsupportedDBDriver
	}

	return nil
}
