package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/microfund/go-microfund/internal/config"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/metrics"
	"github.com/microfund/go-microfund/internal/service"
	"github.com/microfund/go-microfund/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, signup models.SignupRequest) (models.User, error)
	signInFn      func(ctx context.Context, signin models.SigninRequest) (models.User, error)
	userByIDFn    func(ctx context.Context, userID string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, signedToken string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	return m.signUpFn(ctx, signup)
}

func (m *mockAuthService) SignIn(ctx context.Context, signin models.SigninRequest) (models.User, error) {
	return m.signInFn(ctx, signin)
}

func (m *mockAuthService) UserByID(ctx context.Context, userID string) (models.User, error) {
	return m.userByIDFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	return m.parseTokenFn(ctx, signedToken)
}

// ─────────────────────────────────────────────
// Mock LoanService
// ─────────────────────────────────────────────

type mockLoanService struct {
	submitLoanFn func(ctx context.Context, submit models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error)
	listLoansFn  func(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error)
}

func (m *mockLoanService) SubmitLoan(ctx context.Context, submit models.SubmitLoanRequest, applicantID string) (models.BusinessLoan, error) {
	return m.submitLoanFn(ctx, submit, applicantID)
}

func (m *mockLoanService) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.BusinessLoan, error) {
	return m.listLoansFn(ctx, filter)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:            "localhost:5000",
		RequestTimeout:         5 * time.Second,
		CORSAllowedOrigins:     []string{"http://localhost:5173"},
		AuthRatePerMinute:      600,
		AuthRateBurst:          600,
		LimiterCleanupInterval: time.Minute,
	}
}

// newTestHandler builds a Handler with the given service mocks and an
// isolated metrics registry.
func newTestHandler(t *testing.T, auth service.AuthService, loans service.LoanService) *Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: auth,
		LoanService: loans,
	}

	reg := prometheus.NewRegistry()
	return NewHandler(svcs, metrics.NewCollector(reg), reg, testServerConfig(), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeAPIResponse parses the uniform error/status envelope.
func decodeAPIResponse(t *testing.T, body []byte) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validSignup is a convenience fixture used across multiple tests.
var validSignup = models.SignupRequest{
	FullName:    "Jane Doe",
	Email:       "jane@example.com",
	PhoneNumber: "+4915112345678",
	AccountType: "business",
	Password:    "super-secret",
}
