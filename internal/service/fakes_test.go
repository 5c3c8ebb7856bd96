package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeQuizRepository struct {
	createFn  func(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	getAllFn  func(ctx context.Context) ([]models.Quiz, error)
	getByIDFn func(ctx context.Context, id string) (models.Quiz, error)
	updateFn  func(ctx context.Context, id string, update models.QuizUpdate, updatedAt time.Time) (models.Quiz, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeQuizRepository) Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	return f.createFn(ctx, quiz)
}

func (f *fakeQuizRepository) GetAll(ctx context.Context) ([]models.Quiz, error) {
	return f.getAllFn(ctx)
}

func (f *fakeQuizRepository) GetByID(ctx context.Context, id string) (models.Quiz, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeQuizRepository) Update(ctx context.Context, id string, update models.QuizUpdate, updatedAt time.Time) (models.Quiz, error) {
	return f.updateFn(ctx, id, update, updatedAt)
}

func (f *fakeQuizRepository) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return f.findUserByLoginFn(ctx, login)
}

type fixedIDGenerator struct {
	id string
}

func (g fixedIDGenerator) Generate() string {
	return g.id
}
