package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/microfund/go-microfund/internal/config"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the shared database handle together with the driver name so that
// repositories and migrations can stay driver-agnostic.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens a connection using the configured driver ("pgx" for
// PostgreSQL, "sqlite3" for SQLite), tunes the pool, and verifies the
// connection with a ping.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		driver: cfg.Driver,
		logger: log,
	}

	return db, nil
}

// Migrate applies all embedded schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
