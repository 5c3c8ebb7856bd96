// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Quiz is a single-answer multiple-choice question.
//
// CorrectOptionIndex always points into Options; the invariant is checked by
// the validators package before a quiz is stored and is backed by a CHECK
// constraint in the database.
type Quiz struct {
	// ID is a server-assigned UUIDv7 string.
	ID string `json:"id"`

	// Question is the prompt shown to the player.
	Question string `json:"question"`

	// Options is the ordered list of answers the player chooses from.
	Options Options `json:"options"`

	// CorrectOptionIndex is the zero-based index of the right answer in Options.
	CorrectOptionIndex int `json:"correctOptionIndex"`

	// CreatedBy is the ID of the user that created the quiz.
	CreatedBy int64 `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Quiz model.
func (q Quiz) TableName() string {
	return "quizzes"
}

// Apply returns a copy of q with every non-nil field of u written over it.
func (q Quiz) Apply(u QuizUpdate) Quiz {
	if u.Question != nil {
		q.Question = *u.Question
	}
	if u.Options != nil {
		q.Options = append(Options(nil), (*u.Options)...)
	}
	if u.CorrectOptionIndex != nil {
		q.CorrectOptionIndex = *u.CorrectOptionIndex
	}
	return q
}

// QuizUpdate is a partial overwrite of a Quiz.
// Only non-nil fields will be updated.
type QuizUpdate struct {
	Question           *string  `json:"question,omitempty"`
	Options            *Options `json:"options,omitempty"`
	CorrectOptionIndex *int     `json:"correctOptionIndex,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u QuizUpdate) IsEmpty() bool {
	return u.Question == nil && u.Options == nil && u.CorrectOptionIndex == nil
}

// Options is the ordered list of answer strings of a quiz.
// It is stored as a JSON array in a single column.
type Options []string

// Value implements [driver.Valuer].
func (o Options) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(o))
	if err != nil {
		return nil, fmt.Errorf("error marshaling options: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (o *Options) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Options", src)
	}

	var opts []string
	if err := json.Unmarshal(raw, &opts); err != nil {
		return fmt.Errorf("error unmarshaling options: %w", err)
	}
	*o = opts
	return nil
}

// PlayRequest is the body of a play call.
//
// SelectedOptionIndex holds the raw decoded JSON value (float64 for numbers)
// so that a missing, non-numeric or fractional index reaches validation
// after the quiz lookup instead of failing JSON decoding.
type PlayRequest struct {
	SelectedOptionIndex any `json:"selectedOptionIndex"`
}

// PlayResult is the outcome of a play call.
type PlayResult struct {
	IsCorrect bool `json:"isCorrect"`
}

