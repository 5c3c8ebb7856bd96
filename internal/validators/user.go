package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-quiz/models"
)

// Field names accepted by UserValidator.
const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks the credentials of a models.User. By default both login
// and password are required.
func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
