package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-quiz/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formLogin formKind = iota
	formRegister
	formCreateQuiz
	formEditQuiz
)

const optionsSeparator = "|"

var (
	errEmptyCredentials   = errors.New("login and password are required")
	errInvalidCorrectIdx  = errors.New("correct option must be the number of one of the options")
	errNotEnoughOptions   = errors.New("enter at least two options separated by " + optionsSeparator)
	errEmptyQuestionInput = errors.New("question is required")
)

// formModel is a column of labelled text inputs. enter on the last input
// submits the form; enter on any other input moves to the next one.
type formModel struct {
	kind   formKind
	title  string
	quizID string

	labels []string
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newFormModel(kind formKind, title string, labels ...string) formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].CharLimit = 512
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formModel{kind: kind, title: title, labels: labels, inputs: inputs}
}

func newAuthForm(kind formKind) formModel {
	title := "LOG IN"
	if kind == formRegister {
		title = "REGISTER"
	}

	f := newFormModel(kind, title, "Login", "Password")
	f.inputs[0].CharLimit = 64
	f.inputs[1].EchoMode = textinput.EchoPassword
	f.inputs[1].EchoCharacter = '*'
	return f
}

func newQuizForm(quiz *models.Quiz) formModel {
	if quiz == nil {
		return newFormModel(formCreateQuiz, "NEW QUIZ", "Question", "Options (a | b | c)", "Correct option #")
	}

	f := newFormModel(formEditQuiz, "EDIT QUIZ", "Question", "Options (a | b | c)", "Correct option #")
	f.quizID = quiz.ID
	f.inputs[0].SetValue(quiz.Question)
	f.inputs[1].SetValue(strings.Join(quiz.Options, " "+optionsSeparator+" "))
	f.inputs[2].SetValue(strconv.Itoa(quiz.CorrectOptionIndex + 1))
	return f
}

// update returns submit=true when the form should be sent.
func (f formModel) update(msg tea.KeyMsg) (formModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.enter):
		if f.focus == len(f.inputs)-1 {
			return f, nil, true
		}
		cmd := f.moveFocus(1)
		return f, cmd, false
	case key.Matches(msg, keys.tab):
		cmd := f.moveFocus(1)
		return f, cmd, false
	case key.Matches(msg, keys.backtab):
		cmd := f.moveFocus(-1)
		return f, cmd, false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *formModel) moveFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f formModel) value(i int) string {
	return f.inputs[i].Value()
}

func (f formModel) user() (models.User, error) {
	login := strings.TrimSpace(f.value(0))
	password := f.value(1)
	if login == "" || password == "" {
		return models.User{}, errEmptyCredentials
	}
	return models.User{Login: login, Password: password}, nil
}

// quiz parses the quiz inputs. The correct option is entered 1-based, as it
// is numbered on the play screen.
func (f formModel) quiz() (models.Quiz, error) {
	question := strings.TrimSpace(f.value(0))
	if question == "" {
		return models.Quiz{}, errEmptyQuestionInput
	}

	var options models.Options
	for _, opt := range strings.Split(f.value(1), optionsSeparator) {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) < 2 {
		return models.Quiz{}, errNotEnoughOptions
	}

	correct, err := strconv.Atoi(strings.TrimSpace(f.value(2)))
	if err != nil || correct < 1 || correct > len(options) {
		return models.Quiz{}, errInvalidCorrectIdx
	}

	return models.Quiz{
		ID:                 f.quizID,
		Question:           question,
		Options:            options,
		CorrectOptionIndex: correct - 1,
	}, nil
}

func (f formModel) view(spinnerView string) string {
	var b strings.Builder
	for i, input := range f.inputs {
		label := fmt.Sprintf("%-20s", f.labels[i]+":")
		if i == f.focus {
			label = cursorStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n")
		b.WriteString(spinnerView)
		b.WriteString(" Sending...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(f.title, b.String(), "tab: next field  enter: next/submit  esc: cancel")
}
