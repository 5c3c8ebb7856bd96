package models

import "time"

// User represents an account entity used for authentication and authorization.
// Users own the quizzes they create; playing a quiz does not need an account.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password holds the plain-text password on the way in and the bcrypt
	// hash once loaded from storage. The API never returns users.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
