package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered (version 7) identifiers for new quizzes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string. It falls back to a random v4 id if the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s is a well-formed UUID in canonical form.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}

	return uuid.Validate(s) == nil
}
