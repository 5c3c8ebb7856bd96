package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidSelectedOptionIndex is returned by PlayQuiz when the submitted
	// answer index is missing, not an integer or outside the options range.
	ErrInvalidSelectedOptionIndex = errors.New("invalid selected option index")
)
