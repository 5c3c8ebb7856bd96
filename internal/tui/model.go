// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz/internal/adapter"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenPlay
	screenBuildInfo
	screenForm
	screenConfirmDelete
)

// model is the root Bubble Tea model. It owns every screen; only one of them
// is rendered at a time.
type model struct {
	ctx       context.Context
	adapter   adapter.QuizAdapter
	buildInfo models.AppBuildInfo
	copyText  func(string) error
	logger    *logger.Logger

	screen  screen
	spinner spinner.Model
	status  string
	errMsg  string

	quizzes []models.Quiz
	idx     int
	loading bool
	opening bool

	quiz    models.Quiz
	option  int
	playing bool
	result  *models.PlayResult

	form     formModel
	deleting bool
	user     string

	serverVersion string
}

func newModel(ctx context.Context, quizAdapter adapter.QuizAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		adapter:   quizAdapter,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		logger:    log,
		spinner:   s,
		loading:   true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadQuizzes())
}

func (m model) busy() bool {
	return m.loading || m.opening || m.playing || m.form.submitting || m.deleting
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case quizzesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to load quizzes")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.quizzes = msg.quizzes
		if m.idx >= len(m.quizzes) {
			m.idx = len(m.quizzes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case quizOpenedMsg:
		m.opening = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to open quiz")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.quiz = msg.quiz
		m.option = 0
		m.result = nil
		m.screen = screenPlay
		return m, nil

	case playDoneMsg:
		m.playing = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("quiz_id", m.quiz.ID).Msg("failed to play quiz")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		result := msg.result
		m.result = &result
		return m, nil

	case versionLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to get server version")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case authDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("login", msg.login).Msg("authentication failed")
			m.form.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.user = msg.login
		m.screen = screenList
		m.errMsg = ""
		m.status = "Logged in as " + msg.login
		if msg.register {
			m.status = "Registered and logged in as " + msg.login
		}
		return m, nil

	case quizSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("quiz_id", msg.quiz.ID).Msg("failed to save quiz")
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.errMsg = ""
		m.status = "Quiz updated"
		if msg.created {
			m.status = "Quiz created"
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadQuizzes())

	case quizDeletedMsg:
		m.deleting = false
		m.screen = screenList
		if msg.err != nil {
			m.logger.Err(msg.err).Str("quiz_id", msg.id).Msg("failed to delete quiz")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Quiz deleted"
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadQuizzes())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenPlay:
			return m.updatePlay(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenConfirmDelete:
			return m.updateConfirmDelete(msg)
		case screenBuildInfo:
			if key.Matches(msg, keys.esc) {
				m.screen = screenList
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.quizzes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		if m.busy() {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadQuizzes())
	case key.Matches(msg, keys.enter):
		q, ok := m.current()
		if !ok || m.busy() {
			return m, nil
		}
		m.opening = true
		return m, tea.Batch(m.spinner.Tick, m.cmdOpenQuiz(q.ID))
	case key.Matches(msg, keys.copy):
		q, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := m.copyText(q.ID); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Quiz id copied"
	case key.Matches(msg, keys.info):
		m.screen = screenBuildInfo
		return m, m.cmdLoadVersion()
	case key.Matches(msg, keys.login):
		return m.openForm(newAuthForm(formLogin))
	case key.Matches(msg, keys.register):
		return m.openForm(newAuthForm(formRegister))
	case key.Matches(msg, keys.logout):
		if m.adapter.Token() == "" {
			m.status = "Not logged in"
			return m, nil
		}
		m.adapter.SetToken("")
		m.user = ""
		m.status = "Logged out"
	case key.Matches(msg, keys.newQuiz):
		if !m.requireLogin() {
			return m, nil
		}
		return m.openForm(newQuizForm(nil))
	case key.Matches(msg, keys.edit):
		q, ok := m.current()
		if !ok || !m.requireLogin() {
			return m, nil
		}
		return m.openForm(newQuizForm(&q))
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); !ok || !m.requireLogin() {
			return m, nil
		}
		m.screen = screenConfirmDelete
	}
	return m, nil
}

// requireLogin reports whether a token is set; otherwise it tells the user how
// to log in. Write operations are rejected by the server without a token.
func (m *model) requireLogin() bool {
	if m.adapter.Token() != "" {
		return true
	}
	m.errMsg = "Log in first (l) or register (g)"
	return false
}

func (m model) openForm(f formModel) (tea.Model, tea.Cmd) {
	m.form = f
	m.screen = screenForm
	m.errMsg = ""
	m.status = ""
	return m, textinput.Blink
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	if key.Matches(msg, keys.esc) {
		m.screen = screenList
		return m, nil
	}

	form, cmd, submit := m.form.update(msg)
	m.form = form
	if !submit {
		return m, cmd
	}

	var submitCmd tea.Cmd
	switch m.form.kind {
	case formLogin, formRegister:
		user, err := m.form.user()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		submitCmd = m.cmdAuthenticate(user, m.form.kind == formRegister)
	default:
		quiz, err := m.form.quiz()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		submitCmd = m.cmdSaveQuiz(quiz)
	}

	m.form.errMsg = ""
	m.form.submitting = true
	return m, tea.Batch(m.spinner.Tick, submitCmd)
}

func (m model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleting {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.yes):
		q, ok := m.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		m.deleting = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDeleteQuiz(q.ID))
	case key.Matches(msg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

func (m model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.result = nil
		m.errMsg = ""
	case key.Matches(msg, keys.up):
		if m.option > 0 {
			m.option--
			m.result = nil
		}
	case key.Matches(msg, keys.down):
		if m.option < len(m.quiz.Options)-1 {
			m.option++
			m.result = nil
		}
	case key.Matches(msg, keys.enter):
		if m.playing || len(m.quiz.Options) == 0 {
			return m, nil
		}
		m.playing = true
		m.result = nil
		return m, tea.Batch(m.spinner.Tick, m.cmdPlay(m.quiz.ID, m.option))
	}
	return m, nil
}

func (m model) current() (models.Quiz, bool) {
	if len(m.quizzes) == 0 || m.idx < 0 || m.idx >= len(m.quizzes) {
		return models.Quiz{}, false
	}
	return m.quizzes[m.idx], true
}

func (m model) View() string {
	switch m.screen {
	case screenPlay:
		return m.viewPlay()
	case screenForm:
		return m.form.view(m.spinner.View())
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	default:
		return m.viewList()
	}
}

func (m model) cmdLoadQuizzes() tea.Cmd {
	return func() tea.Msg {
		quizzes, err := m.adapter.ListQuizzes(m.ctx)
		return quizzesLoadedMsg{quizzes: quizzes, err: err}
	}
}

func (m model) cmdOpenQuiz(id string) tea.Cmd {
	return func() tea.Msg {
		quiz, err := m.adapter.GetQuiz(m.ctx, id)
		return quizOpenedMsg{quiz: quiz, err: err}
	}
}

func (m model) cmdPlay(id string, selected int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.adapter.PlayQuiz(m.ctx, id, selected)
		return playDoneMsg{result: result, err: err}
	}
}

func (m model) cmdLoadVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.adapter.Version(m.ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m model) cmdAuthenticate(user models.User, register bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if register {
			err = m.adapter.Register(m.ctx, user)
		} else {
			err = m.adapter.Login(m.ctx, user)
		}
		return authDoneMsg{login: user.Login, register: register, err: err}
	}
}

// cmdSaveQuiz creates quiz when it has no id and overwrites every field of
// the stored quiz otherwise.
func (m model) cmdSaveQuiz(quiz models.Quiz) tea.Cmd {
	return func() tea.Msg {
		if quiz.ID == "" {
			created, err := m.adapter.CreateQuiz(m.ctx, quiz)
			return quizSavedMsg{quiz: created, created: true, err: err}
		}

		options := quiz.Options
		update := models.QuizUpdate{
			Question:           &quiz.Question,
			Options:            &options,
			CorrectOptionIndex: &quiz.CorrectOptionIndex,
		}
		updated, err := m.adapter.UpdateQuiz(m.ctx, quiz.ID, update)
		if err != nil {
			updated.ID = quiz.ID
		}
		return quizSavedMsg{quiz: updated, err: err}
	}
}

func (m model) cmdDeleteQuiz(id string) tea.Cmd {
	return func() tea.Msg {
		return quizDeletedMsg{id: id, err: m.adapter.DeleteQuiz(m.ctx, id)}
	}
}
