package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/models"
)

// loanRepository is the SQL-backed implementation of [LoanRepository]
// over the "business_loans" table.
type loanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoanRepository constructs a [LoanRepository] backed by the provided
// database connection and logger.
func NewLoanRepository(db *DB, logger *logger.Logger) LoanRepository {
	logger.Debug().Msg("creating loan repository")
	return &loanRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLoan persists a new loan application and returns it with
// database-assigned fields (CreatedAt, UpdatedAt).
func (r *loanRepository) CreateLoan(ctx context.Context, loan models.BusinessLoan) (models.BusinessLoan, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createLoan,
		loan.ID, loan.ApplicantID, loan.BusinessName, loan.BusinessType,
		loan.YearsFounded, loan.AnnualRevenue, loan.LoanAmount, loan.Duration,
		loan.Description, loan.SustainabilityGoals)

	created := models.BusinessLoan{}
	if err := row.Scan(&created.ID, &created.ApplicantID, &created.BusinessName, &created.BusinessType,
		&created.YearsFounded, &created.AnnualRevenue, &created.LoanAmount, &created.Duration,
		&created.Description, &created.SustainabilityGoals, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*loanRepository.CreateLoan").Msg("error: insert failed")
		return models.BusinessLoan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListLoans returns applications matching the filter, newest first.
// The query is assembled dynamically because every filter field is optional.
func (r *loanRepository) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("loan_id", "applicant_id", "business_name", "business_type",
			"years_founded", "annual_revenue", "loan_amount", "duration_months",
			"description", "sustainability_goals", "created_at", "updated_at").
		From("business_loans").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.ApplicantID != "" {
		builder = builder.Where(sq.Eq{"applicant_id": filter.ApplicantID})
	}
	if filter.BusinessType != "" {
		builder = builder.Where(sq.Eq{"business_type": filter.BusinessType})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.ListLoans").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.ListLoans").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	loans := make([]models.BusinessLoan, 0)
	for rows.Next() {
		var loan models.BusinessLoan
		if err := rows.Scan(&loan.ID, &loan.ApplicantID, &loan.BusinessName, &loan.BusinessType,
			&loan.YearsFounded, &loan.AnnualRevenue, &loan.LoanAmount, &loan.Duration,
			&loan.Description, &loan.SustainabilityGoals, &loan.CreatedAt, &loan.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*loanRepository.ListLoans").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return loans, nil
}
