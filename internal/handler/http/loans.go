package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/service"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

// submitBusinessLoan handles POST /api/submit-business-loan. The applicant
// is always the authenticated user placed in the context by the auth
// middleware.
func (h *Handler) submitBusinessLoan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, msgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	var submitRequest models.SubmitLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&submitRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	loan, err := h.services.LoanService.SubmitLoan(ctx, submitRequest, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during loan submission")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("loan_id", loan.ID).Str("applicant_id", user.ID).Msg("loan application accepted")
	h.metrics.RecordLoanSubmitted()

	utils.WriteJSON(w, models.LoanResponse{
		Message: "Loan application submitted successfully",
		Data:    loan,
	}, http.StatusCreated)
}

// getBusinessLoans handles GET /api/get-business-loans. Optional query
// parameters narrow and page the listing:
//
//	?mine=true          only the caller's own applications
//	?businessType=...   one business category
//	?limit=N&offset=N   paging
func (h *Handler) getBusinessLoans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeError(w, msgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	filter, err := loanFilterFromQuery(r, user.ID)
	if err != nil {
		log.Err(err).Msg("invalid query parameters")
		writeError(w, "invalid query parameters", http.StatusBadRequest)
		return
	}

	loans, err := h.services.LoanService.ListLoans(ctx, filter)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("unexpected error occurred during loan listing")
		writeError(w, http.StatusText(status), status)
		return
	}

	if loans == nil {
		loans = []models.BusinessLoan{}
	}

	utils.WriteJSON(w, loans, http.StatusOK)
}

func loanFilterFromQuery(r *http.Request, callerID string) (models.LoanFilter, error) {
	query := r.URL.Query()

	filter := models.LoanFilter{
		BusinessType: query.Get("businessType"),
	}
	if query.Get("mine") == "true" {
		filter.ApplicantID = callerID
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.LoanFilter{}, err
		}
		filter.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.LoanFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
