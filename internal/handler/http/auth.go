package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/service"
	"github.com/microfund/go-microfund/internal/store"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

// signup handles POST /api/signup. On success it responds with HTTP 201 and
// an [models.AuthResponse] carrying a fresh bearer token.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signupRequest models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, signupRequest)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, "email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user signed up")

	utils.WriteJSON(w, models.AuthResponse{
		Status: "success",
		Token:  token.SignedString,
		Data:   models.AuthData{User: registeredUser},
	}, http.StatusCreated)
}

// signin handles POST /api/signin. Unknown email and wrong password collapse
// into the same response so account existence is not revealed.
func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signinRequest models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&signinRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, signinRequest)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "Please provide email and password", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Warn().Msg("signin rejected")
			h.metrics.RecordAuthFailure("wrong_credentials")
			writeError(w, msgWrongCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signin")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("user_id", foundUser.ID).Msg("user signed in")

	utils.WriteJSON(w, models.AuthResponse{
		Status: "success",
		Token:  token.SignedString,
		Data:   models.AuthData{User: foundUser},
	}, http.StatusOK)
}
