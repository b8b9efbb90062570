package service

import (
	"context"
	"fmt"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/store"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

// loanService is the default [LoanService] implementation.
type loanService struct {
	logger         *logger.Logger
	loanRepository store.LoanRepository
	idGenerator    *utils.UUIDGenerator
}

func NewLoanService(loanRepository store.LoanRepository, logger *logger.Logger) LoanService {
	logger.Debug().Msg("creating loan service")
	return &loanService{
		logger:         logger,
		loanRepository: loanRepository,
		idGenerator:    utils.NewUUIDGenerator(),
	}
}

// SubmitLoan validates the application, assigns a fresh identifier and
// persists it. The applicant reference always comes from the authenticated
// context, never from the request body.
func (s *loanService) SubmitLoan(ctx context.Context, submit models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error) {
	log := logger.FromContext(ctx)

	if applicantID == "" {
		return models.BusinessLoan{}, fmt.Errorf("%w: empty applicant id", ErrInvalidDataProvided)
	}
	if err := validateSubmitLoan(submit); err != nil {
		log.Warn().Str("func", "*loanService.SubmitLoan").Msg("loan application rejected: invalid data")
		return models.BusinessLoan{}, err
	}

	loan := models.BusinessLoan{
		ID:                  s.idGenerator.Generate(),
		ApplicantID:         applicantID,
		BusinessName:        submit.BusinessName,
		BusinessType:        submit.BusinessType,
		YearsFounded:        submit.YearsFounded,
		AnnualRevenue:       submit.AnnualRevenue,
		LoanAmount:          submit.LoanAmount,
		Duration:            submit.Duration,
		Description:         submit.Description,
		SustainabilityGoals: submit.SustainabilityGoals,
	}

	created, err := s.loanRepository.CreateLoan(ctx, loan)
	if err != nil {
		return models.BusinessLoan{}, fmt.Errorf("loan creation failed: %w", err)
	}

	log.Info().Str("func", "*loanService.SubmitLoan").Str("loan_id", created.ID).Msg("loan application stored")
	return created, nil
}

// ListLoans returns applications matching the filter, newest first.
func (s *loanService) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error) {
	loans, err := s.loanRepository.ListLoans(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("loan listing failed: %w", err)
	}
	return loans, nil
}

func validateSubmitLoan(submit models.SubmitLoanRequest) error {
	switch {
	case submit.BusinessName == "":
		return fmt.Errorf("%w: business name is required", ErrInvalidDataProvided)
	case submit.BusinessType == "":
		return fmt.Errorf("%w: business type is required", ErrInvalidDataProvided)
	case submit.LoanAmount <= 0:
		return fmt.Errorf("%w: loan amount must be positive", ErrInvalidDataProvided)
	case submit.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDataProvided)
	case submit.AnnualRevenue < 0:
		return fmt.Errorf("%w: annual revenue cannot be negative", ErrInvalidDataProvided)
	case submit.YearsFounded < 0:
		return fmt.Errorf("%w: years founded cannot be negative", ErrInvalidDataProvided)
	}
	return nil
}
