package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuestion              = errors.New("question is required")
	ErrNotEnoughOptions           = errors.New("at least two options are required")
	ErrEmptyOption                = errors.New("options must not be blank")
	ErrInvalidCorrectOptionIndex  = errors.New("correctOptionIndex must point into options")
	ErrNoFieldsToUpdate           = errors.New("at least one field must be provided for update")
	ErrInvalidSelectedOptionIndex = errors.New("selectedOptionIndex must be an integer within options range")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
)
