// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertQuizQuery(t *testing.T) {
	now := time.Now().UTC()
	quiz := sampleQuiz(now)

	query, args, err := buildInsertQuizQuery(dollarBuilder, quiz)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO quizzes (id,question,options,correct_option_index,created_by,created_at,updated_at)"))
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6,$7)")
	assert.Contains(t, query, "RETURNING id, question, options, correct_option_index, created_by, created_at, updated_at")
	require.Len(t, args, 7)
	assert.Equal(t, quiz.ID, args[0])
	assert.Equal(t, quiz.Options, args[2])
	assert.Equal(t, nullableUserID(7), args[4])
}

func Test_buildInsertQuizQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildInsertQuizQuery(questionBuilder, sampleQuiz(time.Now()))
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?,?,?,?)")
	assert.NotContains(t, query, "$1")
}

func Test_buildSelectAllQuizzesQuery(t *testing.T) {
	query, args, err := buildSelectAllQuizzesQuery(dollarBuilder)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, question, options, correct_option_index, created_by, created_at, updated_at FROM quizzes ORDER BY created_at ASC, id ASC", query)
	assert.Empty(t, args)
}

func Test_buildSelectQuizByIDQuery(t *testing.T) {
	query, args, err := buildSelectQuizByIDQuery(questionBuilder, testQuizID)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "FROM quizzes WHERE id = ?"))
	assert.Equal(t, []any{testQuizID}, args)
}

func Test_buildUpdateQuizQuery(t *testing.T) {
	now := time.Now().UTC()
	question := "new?"
	opts := models.Options{"a", "b"}
	idx := 1

	tests := []struct {
		name     string
		update   models.QuizUpdate
		wantSet  string
		wantArgs int
	}{
		{
			name:     "question only",
			update:   models.QuizUpdate{Question: &question},
			wantSet:  "SET updated_at = $1, question = $2 WHERE id = $3",
			wantArgs: 3,
		},
		{
			name:     "options and index",
			update:   models.QuizUpdate{Options: &opts, CorrectOptionIndex: &idx},
			wantSet:  "SET updated_at = $1, options = $2, correct_option_index = $3 WHERE id = $4",
			wantArgs: 4,
		},
		{
			name:     "all fields",
			update:   models.QuizUpdate{Question: &question, Options: &opts, CorrectOptionIndex: &idx},
			wantSet:  "SET updated_at = $1, question = $2, options = $3, correct_option_index = $4 WHERE id = $5",
			wantArgs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateQuizQuery(dollarBuilder, testQuizID, tt.update, now)
			require.NoError(t, err)

			assert.Contains(t, query, "UPDATE quizzes "+tt.wantSet)
			assert.Contains(t, query, "RETURNING id,")
			require.Len(t, args, tt.wantArgs)
			assert.Equal(t, now, args[0])
			assert.Equal(t, testQuizID, args[len(args)-1])
		})
	}
}

func Test_buildDeleteQuizQuery(t *testing.T) {
	query, args, err := buildDeleteQuizQuery(dollarBuilder, testQuizID)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM quizzes WHERE id = $1 RETURNING id", query)
	assert.Equal(t, []any{testQuizID}, args)
}

func Test_buildUserQueries(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := buildInsertUserQuery(questionBuilder, models.User{Login: "bob", Password: "hash", CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (login,password,created_at) VALUES (?,?,?) RETURNING user_id, login, password, created_at", query)
	assert.Equal(t, []any{"bob", "hash", now}, args)

	query, args, err = buildSelectUserByLoginQuery(dollarBuilder, "bob")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, login, password, created_at FROM users WHERE login = $1", query)
	assert.Equal(t, []any{"bob"}, args)
}
