package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// BearerScheme is the authorization scheme used for quiz API tokens.
const BearerScheme = "Bearer"

// Token is an issued or parsed access token.
//
// The "sub" claim carries the user id. UserID caches it once the token has
// been parsed; SignedString is set only on tokens issued by this process.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}
	if sub == "" {
		return 0, errors.New("token has no subject")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", sub, err)
	}

	return userID, nil
}

// AuthorizationHeader returns the value for an Authorization header.
func (t *Token) AuthorizationHeader() string {
	return BearerScheme + " " + t.SignedString
}

func (t *Token) String() string {
	return t.SignedString
}
