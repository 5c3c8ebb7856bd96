package tui

import "github.com/MKhiriev/go-quiz/models"

type quizzesLoadedMsg struct {
	quizzes []models.Quiz
	err     error
}

type quizOpenedMsg struct {
	quiz models.Quiz
	err  error
}

type playDoneMsg struct {
	result models.PlayResult
	err    error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type authDoneMsg struct {
	login    string
	register bool
	err      error
}

type quizSavedMsg struct {
	quiz    models.Quiz
	created bool
	err     error
}

type quizDeletedMsg struct {
	id  string
	err error
}
