package service

import (
	"github.com/microfund/go-microfund/internal/config"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/store"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AuthService AuthService
	LoanService LoanService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		LoanService: NewLoanService(storages.LoanRepository, logger),
	}
}
