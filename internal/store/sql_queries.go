package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz/models"
)

const (
	quizzesTable = "quizzes"
	usersTable   = "users"
)

var quizColumns = []string{
	"id",
	"question",
	"options",
	"correct_option_index",
	"created_by",
	"created_at",
	"updated_at",
}

var userColumns = []string{
	"user_id",
	"login",
	"password",
	"created_at",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// nullableUserID stores a zero creator as NULL.
func nullableUserID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func buildInsertQuizQuery(b sq.StatementBuilderType, quiz models.Quiz) (string, []any, error) {
	return b.Insert(quizzesTable).
		Columns(quizColumns...).
		Values(
			quiz.ID,
			quiz.Question,
			quiz.Options,
			quiz.CorrectOptionIndex,
			nullableUserID(quiz.CreatedBy),
			quiz.CreatedAt,
			quiz.UpdatedAt,
		).
		Suffix(returning(quizColumns)).
		ToSql()
}

func buildSelectAllQuizzesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(quizColumns...).
		From(quizzesTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildSelectQuizByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(quizColumns...).
		From(quizzesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateQuizQuery sets updated_at plus every column the update carries.
func buildUpdateQuizQuery(b sq.StatementBuilderType, id string, update models.QuizUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update(quizzesTable).Set("updated_at", updatedAt)

	if update.Question != nil {
		query = query.Set("question", *update.Question)
	}
	if update.Options != nil {
		query = query.Set("options", *update.Options)
	}
	if update.CorrectOptionIndex != nil {
		query = query.Set("correct_option_index", *update.CorrectOptionIndex)
	}

	return query.
		Where(sq.Eq{"id": id}).
		Suffix(returning(quizColumns)).
		ToSql()
}

func buildDeleteQuizQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(quizzesTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password", "created_at").
		Values(user.Login, user.Password, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}
