// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-quiz server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

// Quiz endpoint messages.
const (
	// MsgFailedToCreateQuiz is returned by POST /api/quiz/create on any failure.
	MsgFailedToCreateQuiz = "Failed to create quiz"

	// MsgInternalServerError is returned when listing quizzes fails.
	MsgInternalServerError = "Internal Server Error"

	// MsgFailedToRetrieveQuiz is returned when a single quiz cannot be read.
	MsgFailedToRetrieveQuiz = "Failed to retrieve quiz"

	// MsgFailedToUpdateQuiz is returned by PUT /api/quiz/{quizId}.
	MsgFailedToUpdateQuiz = "Failed to update quiz"

	// MsgFailedToDeleteQuiz is returned by DELETE /api/quiz/{quizId}.
	MsgFailedToDeleteQuiz = "Failed to delete quiz"

	// MsgFailedToPlayQuiz is returned when scoring an answer fails unexpectedly.
	MsgFailedToPlayQuiz = "Failed to play quiz"

	// MsgQuizNotFound is returned when the addressed quiz does not exist.
	MsgQuizNotFound = "Quiz not found"

	// MsgInvalidSelectedOptionIndex is returned when the submitted answer
	// index is missing, not an integer or outside the options range.
	MsgInvalidSelectedOptionIndex = "Invalid selected option index"

	// MsgQuizDeleted is the success message of DELETE /api/quiz/{quizId}.
	MsgQuizDeleted = "Quiz deleted successfully"
)

// Authentication messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
