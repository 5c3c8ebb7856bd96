package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/store"
	"github.com/MKhiriev/go-quiz/internal/utils"
	"github.com/MKhiriev/go-quiz/internal/validators"
	"github.com/MKhiriev/go-quiz/models"
)

// quizService is the concrete implementation of QuizService.
type quizService struct {
	quizRepository store.QuizRepository
	validator      validators.Validator
	ids            IDGenerator

	// now stamps created_at/updated_at.
	now func() time.Time

	logger *logger.Logger
}

func NewQuizService(quizRepository store.QuizRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) QuizService {
	return &quizService{
		quizRepository: quizRepository,
		validator:      validator,
		ids:            ids,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// CreateQuiz validates quiz, assigns a fresh id and timestamps, stamps the
// authenticated user as creator and stores it. Client supplied id, creator
// and timestamps are ignored.
func (s *quizService) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, quiz); err != nil {
		log.Err(err).Str("func", "*quizService.CreateQuiz").Msg("invalid quiz provided")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now()
	quiz.ID = s.ids.Generate()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	quiz.CreatedBy = 0
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		quiz.CreatedBy = userID
	}

	created, err := s.quizRepository.Create(ctx, quiz)
	if err != nil {
		log.Err(err).Str("func", "*quizService.CreateQuiz").Msg("quiz creation ended with error")
		return models.Quiz{}, fmt.Errorf("quiz creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID).Int64("created_by", created.CreatedBy).Msg("quiz created")
	return created, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := s.quizRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*quizService.ListQuizzes").Msg("listing quizzes failed")
		return nil, fmt.Errorf("listing quizzes failed: %w", err)
	}

	return quizzes, nil
}

func (s *quizService) GetQuiz(ctx context.Context, id string) (models.Quiz, error) {
	if !utils.IsValidUUID(id) {
		return models.Quiz{}, notFound(id)
	}

	quiz, err := s.quizRepository.GetByID(ctx, id)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("getting quiz %q failed: %w", id, err)
	}

	return quiz, nil
}

// UpdateQuiz applies update over the stored quiz. The merged quiz must be a
// valid quiz on its own, so an index that no longer fits the options is
// rejected before anything is written.
func (s *quizService) UpdateQuiz(ctx context.Context, id string, update models.QuizUpdate) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(id) {
		return models.Quiz{}, notFound(id)
	}

	current, err := s.quizRepository.GetByID(ctx, id)
	if err != nil {
		return models.Quiz{}, fmt.Errorf("getting quiz %q failed: %w", id, err)
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "*quizService.UpdateQuiz").Str("id", id).Msg("invalid quiz update provided")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.validator.Validate(ctx, current.Apply(update)); err != nil {
		log.Err(err).Str("func", "*quizService.UpdateQuiz").Str("id", id).Msg("updated quiz would be invalid")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.quizRepository.Update(ctx, id, update, s.now())
	if err != nil {
		log.Err(err).Str("func", "*quizService.UpdateQuiz").Str("id", id).Msg("quiz update ended with error")
		return models.Quiz{}, fmt.Errorf("quiz update ended with error: %w", err)
	}

	return updated, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	if !utils.IsValidUUID(id) {
		return notFound(id)
	}

	if err := s.quizRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*quizService.DeleteQuiz").Str("id", id).Msg("quiz deletion ended with error")
		return fmt.Errorf("quiz deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("quiz deleted")
	return nil
}

// PlayQuiz scores one answer. The quiz is looked up before the index is
// checked, so an unknown quiz wins over a bad index.
func (s *quizService) PlayQuiz(ctx context.Context, id string, req models.PlayRequest) (models.PlayResult, error) {
	quiz, err := s.GetQuiz(ctx, id)
	if err != nil {
		return models.PlayResult{}, err
	}

	selected, err := validators.SelectedOptionIndex(req.SelectedOptionIndex, len(quiz.Options))
	if err != nil {
		logger.FromContext(ctx).Debug().Str("id", id).Any("selectedOptionIndex", req.SelectedOptionIndex).Msg("invalid answer index")
		return models.PlayResult{}, fmt.Errorf("%w: %w", ErrInvalidSelectedOptionIndex, err)
	}

	return models.PlayResult{IsCorrect: selected == quiz.CorrectOptionIndex}, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %q", store.ErrQuizNotFound, id)
}
