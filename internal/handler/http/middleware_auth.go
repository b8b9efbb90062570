package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/store"
	"github.com/microfund/go-microfund/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], resolves the
// account the token points at and stores the [models.User] value in the
// request context under [utils.UserCtxKey] before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in three
// distinguishable cases, each with its own client-facing message:
//   - the "Authorization" header is absent or not a bearer value;
//   - the token is expired, malformed or carries a bad signature;
//   - the token is valid but the account no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.metrics.RecordAuthFailure("missing_token")
			writeError(w, msgNotLoggedIn, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			h.metrics.RecordAuthFailure("missing_token")
			writeError(w, msgNotLoggedIn, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			h.metrics.RecordAuthFailure("invalid_token")
			writeError(w, msgAuthFailed, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.UserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Warn().Str("user_id", token.UserID).Msg("token owner no longer exists")
				h.metrics.RecordAuthFailure("user_gone")
				writeError(w, msgUserGone, http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("error occurred during token owner lookup")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
