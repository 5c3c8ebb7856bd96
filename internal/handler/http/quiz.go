// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz/internal/app"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/utils"
	"github.com/MKhiriev/go-quiz/models"
)

// quizIDParam is the chi URL parameter holding the quiz id.
const quizIDParam = "quizId"

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// decodeOptionalJSON is decodeJSON for routes that address an existing quiz:
// an empty body leaves dst zeroed so the quiz lookup still decides 404.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// writeQuizError writes the error body of a quiz operation. Not-found answers
// carry no cause; every other status carries msg and the cause.
func writeQuizError(w http.ResponseWriter, r *http.Request, err error, fallback int, msg string) {
	status := statusFromError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	if status == http.StatusNotFound {
		utils.WriteError(w, status, app.MsgQuizNotFound, nil)
		return
	}
	utils.WriteError(w, status, msg, err)
}

func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := decodeJSON(w, r, &quiz); err != nil {
		writeQuizError(w, r, err, http.StatusBadRequest, app.MsgFailedToCreateQuiz)
		return
	}

	created, err := h.services.QuizService.CreateQuiz(r.Context(), quiz)
	if err != nil {
		writeQuizError(w, r, err, http.StatusBadRequest, app.MsgFailedToCreateQuiz)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.services.QuizService.ListQuizzes(r.Context())
	if err != nil {
		writeQuizError(w, r, err, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	utils.WriteJSON(w, models.QuizListResponse{Quiz: quizzes}, http.StatusOK)
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.services.QuizService.GetQuiz(r.Context(), chi.URLParam(r, quizIDParam))
	if err != nil {
		writeQuizError(w, r, err, http.StatusInternalServerError, app.MsgFailedToRetrieveQuiz)
		return
	}

	utils.WriteJSON(w, quiz, http.StatusOK)
}

func (h *Handler) updateQuiz(w http.ResponseWriter, r *http.Request) {
	var update models.QuizUpdate
	if err := decodeOptionalJSON(w, r, &update); err != nil {
		writeQuizError(w, r, err, http.StatusBadRequest, app.MsgFailedToUpdateQuiz)
		return
	}

	updated, err := h.services.QuizService.UpdateQuiz(r.Context(), chi.URLParam(r, quizIDParam), update)
	if err != nil {
		writeQuizError(w, r, err, http.StatusBadRequest, app.MsgFailedToUpdateQuiz)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.QuizService.DeleteQuiz(r.Context(), chi.URLParam(r, quizIDParam)); err != nil {
		writeQuizError(w, r, err, http.StatusInternalServerError, app.MsgFailedToDeleteQuiz)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgQuizDeleted}, http.StatusOK)
}

// playQuiz scores one answer. A body that is not JSON at all is rejected
// up front; a missing body and every index problem are reported by the
// service after the quiz lookup. Index errors carry no cause.
func (h *Handler) playQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.PlayRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidSelectedOptionIndex)
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidSelectedOptionIndex, nil)
		return
	}

	result, err := h.services.QuizService.PlayQuiz(r.Context(), chi.URLParam(r, quizIDParam), req)
	if err != nil {
		if statusFromError(err, http.StatusInternalServerError) == http.StatusBadRequest {
			logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidSelectedOptionIndex)
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidSelectedOptionIndex, nil)
			return
		}
		writeQuizError(w, r, err, http.StatusInternalServerError, app.MsgFailedToPlayQuiz)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
