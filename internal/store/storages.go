package store

import "github.com/MKhiriev/go-quiz/internal/logger"

// Storages groups the repositories built on top of one database connection.
type Storages struct {
	QuizRepository QuizRepository
	UserRepository UserRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		QuizRepository: NewQuizRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
	}
}
