package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microfund/go-microfund/internal/service"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

var validLoanRequest = models.SubmitLoanRequest{
	BusinessName:        "Solar Farms Ltd",
	BusinessType:        "energy",
	YearsFounded:        2019,
	AnnualRevenue:       250000,
	LoanAmount:          50000,
	Duration:            24,
	Description:         "Expand panel capacity",
	SustainabilityGoals: "Cut diesel generator use to zero",
}

// withUser attaches an authenticated user to the request context the same
// way the auth middleware does.
func withUser(req *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserCtxKey, user)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// submitBusinessLoan
// ─────────────────────────────────────────────

func TestSubmitBusinessLoan_Success(t *testing.T) {
	var gotApplicant string
	loans := &mockLoanService{
		submitLoanFn: func(_ context.Context, submit models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error) {
			gotApplicant = applicantID
			return models.BusinessLoan{ID: "loan-1", ApplicantID: applicantID, BusinessName: submit.BusinessName}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	req := httptest.NewRequest(http.MethodPost, "/api/submit-business-loan", strings.NewReader(jsonBody(t, validLoanRequest)))
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.submitBusinessLoan(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", gotApplicant)

	var resp models.LoanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Loan application submitted successfully", resp.Message)
	assert.Equal(t, "loan-1", resp.Data.ID)
}

// TestSubmitBusinessLoan_IgnoresBodyApplicant verifies that an applicantId
// smuggled into the request body cannot override the authenticated user.
func TestSubmitBusinessLoan_IgnoresBodyApplicant(t *testing.T) {
	var gotApplicant string
	loans := &mockLoanService{
		submitLoanFn: func(_ context.Context, _ models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error) {
			gotApplicant = applicantID
			return models.BusinessLoan{ID: "loan-1", ApplicantID: applicantID}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	body := `{"applicantId":"someone-else","businessName":"Solar Farms Ltd","businessType":"energy","loanAmount":1000,"duration":12}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit-business-loan", strings.NewReader(body))
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.submitBusinessLoan(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", gotApplicant)
}

func TestSubmitBusinessLoan_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLoanService{})

	req := httptest.NewRequest(http.MethodPost, "/api/submit-business-loan", strings.NewReader(jsonBody(t, validLoanRequest)))
	rec := httptest.NewRecorder()

	h.submitBusinessLoan(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitBusinessLoan_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLoanService{})

	req := httptest.NewRequest(http.MethodPost, "/api/submit-business-loan", strings.NewReader("{invalid"))
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.submitBusinessLoan(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitBusinessLoan_InvalidData(t *testing.T) {
	loans := &mockLoanService{
		submitLoanFn: func(_ context.Context, _ models.SubmitLoanRequest, _ string) (models.BusinessLoan, error) {
			return models.BusinessLoan{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	req := httptest.NewRequest(http.MethodPost, "/api/submit-business-loan", strings.NewReader(`{"businessName":""}`))
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.submitBusinessLoan(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeAPIResponse(t, rec.Body.Bytes()).Status)
}

// ─────────────────────────────────────────────
// getBusinessLoans
// ─────────────────────────────────────────────

func TestGetBusinessLoans_Success(t *testing.T) {
	loans := &mockLoanService{
		listLoansFn: func(_ context.Context, _ models.LoanFilter) ([]models.BusinessLoan, error) {
			return []models.BusinessLoan{{ID: "loan-1"}, {ID: "loan-2"}}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	req := httptest.NewRequest(http.MethodGet, "/api/get-business-loans", nil)
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.getBusinessLoans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.BusinessLoan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

// TestGetBusinessLoans_Empty verifies an empty listing serialises as []
// rather than null.
func TestGetBusinessLoans_Empty(t *testing.T) {
	loans := &mockLoanService{
		listLoansFn: func(_ context.Context, _ models.LoanFilter) ([]models.BusinessLoan, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	req := httptest.NewRequest(http.MethodGet, "/api/get-business-loans", nil)
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.getBusinessLoans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetBusinessLoans_QueryFilters(t *testing.T) {
	var gotFilter models.LoanFilter
	loans := &mockLoanService{
		listLoansFn: func(_ context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, loans)
	req := httptest.NewRequest(http.MethodGet, "/api/get-business-loans?mine=true&businessType=energy&limit=10&offset=20", nil)
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.getBusinessLoans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotFilter.ApplicantID)
	assert.Equal(t, "energy", gotFilter.BusinessType)
	assert.Equal(t, uint64(10), gotFilter.Limit)
	assert.Equal(t, uint64(20), gotFilter.Offset)
}

func TestGetBusinessLoans_BadLimit(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLoanService{})

	req := httptest.NewRequest(http.MethodGet, "/api/get-business-loans?limit=abc", nil)
	req = withUser(req, models.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	h.getBusinessLoans(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
