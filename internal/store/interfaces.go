package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz/models"
)

// QuizRepository persists quizzes.
//
// GetByID, Update and Delete return ErrQuizNotFound when no row has the
// given id. Create and Update return ErrQuizConstraintViolation when the
// database rejects the row.
type QuizRepository interface {
	Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	GetAll(ctx context.Context) ([]models.Quiz, error)
	GetByID(ctx context.Context, id string) (models.Quiz, error)
	Update(ctx context.Context, id string, update models.QuizUpdate, updatedAt time.Time) (models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
