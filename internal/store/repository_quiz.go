package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/models"
)

// quizRepository is the SQL implementation of [QuizRepository]. It works
// with both Postgres and SQLite; the dialect comes from the [DB] it wraps.
type quizRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewQuizRepository(db *DB, logger *logger.Logger) QuizRepository {
	logger.Debug().Msg("creating quiz repository")
	return &quizRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (models.Quiz, error) {
	var (
		quiz      models.Quiz
		createdBy sql.NullInt64
	)

	err := row.Scan(
		&quiz.ID,
		&quiz.Question,
		&quiz.Options,
		&quiz.CorrectOptionIndex,
		&createdBy,
		timestamp{&quiz.CreatedAt},
		timestamp{&quiz.UpdatedAt},
	)
	if err != nil {
		return models.Quiz{}, err
	}

	quiz.CreatedBy = createdBy.Int64
	return quiz, nil
}

func (r *quizRepository) Create(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuizQuery(r.db.builder(), quiz)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Create").Msg("error building query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanQuiz(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Create").Str("id", quiz.ID).Msg("error inserting quiz")
		return models.Quiz{}, r.mapWriteError(err)
	}

	return created, nil
}

func (r *quizRepository) GetAll(ctx context.Context) ([]models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllQuizzesQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.GetAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.GetAll").Msg("error selecting quizzes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	quizzes := make([]models.Quiz, 0)
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			log.Err(err).Str("func", "*quizRepository.GetAll").Msg("error scanning quiz")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*quizRepository.GetAll").Msg("error iterating quizzes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return quizzes, nil
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuizByIDQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.GetByID").Msg("error building query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	quiz, err := scanQuiz(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quiz{}, ErrQuizNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.GetByID").Str("id", id).Msg("error selecting quiz")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return quiz, nil
}

func (r *quizRepository) Update(ctx context.Context, id string, update models.QuizUpdate, updatedAt time.Time) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuizQuery(r.db.builder(), id, update, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Update").Msg("error building query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanQuiz(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quiz{}, ErrQuizNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Update").Str("id", id).Msg("error updating quiz")
		return models.Quiz{}, r.mapWriteError(err)
	}

	return updated, nil
}

func (r *quizRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuizQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deletedID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQuizNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.Delete").Str("id", id).Msg("error deleting quiz")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// mapWriteError turns constraint failures of an INSERT or UPDATE into
// ErrQuizConstraintViolation.
func (r *quizRepository) mapWriteError(err error) error {
	switch r.db.classify(err) {
	case CheckViolation, ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrQuizConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
