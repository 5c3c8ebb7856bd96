// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-quiz REST API.
//
// [QuizAdapter] decouples the terminal UI from the transport. The package
// ships an HTTP implementation ([NewHTTPQuizAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quiz/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/quiz_adapter_mock.go -package=mock

// QuizAdapter defines communication with the go-quiz server.
type QuizAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, user models.User) error

	ListQuizzes(ctx context.Context) ([]models.Quiz, error)
	GetQuiz(ctx context.Context, id string) (models.Quiz, error)

	// CreateQuiz, UpdateQuiz and DeleteQuiz require a token.
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, update models.QuizUpdate) (models.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error

	// PlayQuiz submits selected as the answer to quiz id.
	PlayQuiz(ctx context.Context, id string, selected int) (models.PlayResult, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
