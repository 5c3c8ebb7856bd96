package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz/internal/app"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/service"
	"github.com/MKhiriev/go-quiz/internal/store"
	"github.com/MKhiriev/go-quiz/internal/utils"
	"github.com/MKhiriev/go-quiz/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, err)
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			utils.WriteError(w, http.StatusConflict, app.MsgLoginAlreadyExists, nil)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, nil)
		}
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch status := statusFromError(err, http.StatusInternalServerError); status {
		case http.StatusBadRequest:
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, status, app.MsgInvalidDataProvided, err)
		case http.StatusNotFound, http.StatusUnauthorized:
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, status, app.MsgInvalidLoginPassword, nil)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, status, app.MsgInternalServerError, nil)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

// writeToken issues a token for user and returns it in the Authorization
// header of an empty 200 response.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, nil)
		return
	}

	w.Header().Set("Authorization", token.AuthorizationHeader())
	w.WriteHeader(http.StatusOK)
}
