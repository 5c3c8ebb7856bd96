package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-quiz/models"
)

// Field names accepted by QuizValidator.
const (
	FieldQuestion           = "question"
	FieldOptions            = "options"
	FieldCorrectOptionIndex = "correct_option_index"
)

// minOptions is the smallest number of answers a quiz may offer.
const minOptions = 2

type QuizValidator struct {
}

func NewQuizValidator() Validator {
	return &QuizValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Quiz / *models.Quiz: all fields by default
//   - models.QuizUpdate / *models.QuizUpdate: non-empty, plus every field
//     that is set and can be checked on its own
func (v *QuizValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Quiz:
		return v.validateQuiz(ctx, value, fields...)
	case *models.Quiz:
		return v.validateQuiz(ctx, *value, fields...)

	case models.QuizUpdate:
		return v.validateQuizUpdate(ctx, value)
	case *models.QuizUpdate:
		return v.validateQuizUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *QuizValidator) validateQuiz(_ context.Context, quiz models.Quiz, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion, FieldOptions, FieldCorrectOptionIndex}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if err := checkQuestion(quiz.Question); err != nil {
				return err
			}
		case FieldOptions:
			if err := checkOptions(quiz.Options); err != nil {
				return err
			}
		case FieldCorrectOptionIndex:
			if quiz.CorrectOptionIndex < 0 || quiz.CorrectOptionIndex >= len(quiz.Options) {
				return ErrInvalidCorrectOptionIndex
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateQuizUpdate checks an update in isolation. The correct index is only
// range-checked against options carried by the same update; the merged quiz
// is validated separately.
func (v *QuizValidator) validateQuizUpdate(_ context.Context, update models.QuizUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if update.Question != nil {
		if err := checkQuestion(*update.Question); err != nil {
			return err
		}
	}
	if update.Options != nil {
		if err := checkOptions(*update.Options); err != nil {
			return err
		}
	}
	if update.CorrectOptionIndex != nil {
		idx := *update.CorrectOptionIndex
		if idx < 0 || (update.Options != nil && idx >= len(*update.Options)) {
			return ErrInvalidCorrectOptionIndex
		}
	}

	return nil
}

func checkQuestion(q string) error {
	if strings.TrimSpace(q) == "" {
		return ErrEmptyQuestion
	}
	return nil
}

func checkOptions(opts models.Options) error {
	if len(opts) < minOptions {
		return ErrNotEnoughOptions
	}
	for _, o := range opts {
		if strings.TrimSpace(o) == "" {
			return ErrEmptyOption
		}
	}
	return nil
}

// SelectedOptionIndex converts the raw decoded selectedOptionIndex of a play
// request into an index into a quiz with optionsCount options.
//
// The value must be a JSON number with no fractional part in
// [0, optionsCount); anything else yields ErrInvalidSelectedOptionIndex.
func SelectedOptionIndex(raw any, optionsCount int) (int, error) {
	f, ok := raw.(float64)
	if !ok {
		return 0, ErrInvalidSelectedOptionIndex
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrInvalidSelectedOptionIndex
	}
	if f < 0 || f >= float64(optionsCount) {
		return 0, ErrInvalidSelectedOptionIndex
	}

	return int(f), nil
}
