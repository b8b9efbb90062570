package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/mock"
	"github.com/microfund/go-microfund/models"
)

func newTestLoanSvc(t *testing.T, ctrl *gomock.Controller) (*loanService, *mock.MockLoanRepository) {
	t.Helper()
	mockLoans := mock.NewMockLoanRepository(ctrl)
	svc := NewLoanService(mockLoans, logger.Nop()).(*loanService)
	return svc, mockLoans
}

func validSubmit() models.SubmitLoanRequest {
	return models.SubmitLoanRequest{
		BusinessName:        "Solar Farms Ltd",
		BusinessType:        "energy",
		YearsFounded:        2019,
		AnnualRevenue:       250000,
		LoanAmount:          50000,
		Duration:            24,
		Description:         "Expand panel capacity",
		SustainabilityGoals: "Cut diesel generator use to zero",
	}
}

func TestLoanService_SubmitLoan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	var captured models.BusinessLoan
	mockLoans.EXPECT().
		CreateLoan(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loan models.BusinessLoan) (models.BusinessLoan, error) {
			captured = loan
			return loan, nil
		})

	created, err := svc.SubmitLoan(ctx, validSubmit(), "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", captured.ApplicantID)
	assert.Equal(t, "Solar Farms Ltd", captured.BusinessName)
}

func TestLoanService_SubmitLoan_EmptyApplicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)

	_, err := svc.SubmitLoan(context.Background(), validSubmit(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLoanService_SubmitLoan_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.SubmitLoanRequest)
	}{
		{name: "missing business name", mutate: func(r *models.SubmitLoanRequest) { r.BusinessName = "" }},
		{name: "missing business type", mutate: func(r *models.SubmitLoanRequest) { r.BusinessType = "" }},
		{name: "zero loan amount", mutate: func(r *models.SubmitLoanRequest) { r.LoanAmount = 0 }},
		{name: "negative loan amount", mutate: func(r *models.SubmitLoanRequest) { r.LoanAmount = -100 }},
		{name: "zero duration", mutate: func(r *models.SubmitLoanRequest) { r.Duration = 0 }},
		{name: "negative revenue", mutate: func(r *models.SubmitLoanRequest) { r.AnnualRevenue = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submit := validSubmit()
			tt.mutate(&submit)

			_, err := svc.SubmitLoan(ctx, submit, "user-1")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestLoanService_SubmitLoan_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("connection reset")
	mockLoans.EXPECT().
		CreateLoan(ctx, gomock.Any()).
		Return(models.BusinessLoan{}, storageErr)

	_, err := svc.SubmitLoan(ctx, validSubmit(), "user-1")
	assert.ErrorIs(t, err, storageErr)
}

func TestLoanService_ListLoans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	filter := models.LoanFilter{ApplicantID: "user-1", Limit: 10}
	mockLoans.EXPECT().
		ListLoans(ctx, filter).
		Return([]models.BusinessLoan{{ID: "loan-1"}, {ID: "loan-2"}}, nil)

	loans, err := svc.ListLoans(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, loans, 2)
}

func TestLoanService_ListLoans_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	mockLoans.EXPECT().
		ListLoans(ctx, models.LoanFilter{}).
		Return(nil, errors.New("query failed"))

	_, err := svc.ListLoans(ctx, models.LoanFilter{})
	assert.Error(t, err)
}
