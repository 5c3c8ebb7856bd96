package service

import (
	"context"

	"github.com/MKhiriev/go-quiz/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QuizService implements the quiz use cases. Unknown or malformed quiz ids
// yield store.ErrQuizNotFound; rejected input yields ErrInvalidDataProvided.
type QuizService interface {
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	ListQuizzes(ctx context.Context) ([]models.Quiz, error)
	GetQuiz(ctx context.Context, id string) (models.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, update models.QuizUpdate) (models.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	PlayQuiz(ctx context.Context, id string, req models.PlayRequest) (models.PlayResult, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new quizzes.
type IDGenerator interface {
	Generate() string
}
