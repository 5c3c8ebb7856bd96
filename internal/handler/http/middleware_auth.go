package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-quiz/internal/app"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the authenticated user's ID
// in the request context with [utils.WithUserID] before delegating to the
// next handler.
//
// Requests without a header, with a header that is not "Bearer <token>" or
// with an expired or otherwise invalid token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
