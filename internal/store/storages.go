package store

import "github.com/microfund/go-microfund/internal/logger"

// Storages bundles all repositories built on top of a single database
// connection, ready to be handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	LoanRepository LoanRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		LoanRepository: NewLoanRepository(db, logger),
	}
}
