package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-quiz/internal/adapter"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/mock"
	"github.com/MKhiriev/go-quiz/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testQuizzes = []models.Quiz{
	{ID: "q-1", Question: "2+2?", Options: models.Options{"3", "4"}, CorrectOptionIndex: 1},
	{ID: "q-2", Question: "Capital of France?", Options: models.Options{"Paris", "Rome", "Oslo"}},
}

func newTestModel(t *testing.T) (model, *mock.MockQuizAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockQuizAdapter(ctrl)
	m := newModel(context.Background(), a, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"), logger.Nop())
	return m, a
}

// run executes cmd and feeds every non-spinner message back into m.
func run(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(t *testing.T, m model, k tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, m model, a *mock.MockQuizAdapter) model {
	t.Helper()
	a.EXPECT().ListQuizzes(gomock.Any()).Return(testQuizzes, nil)
	return run(t, m, m.Init())
}

func TestInit_LoadsQuizzes(t *testing.T) {
	m, a := newTestModel(t)
	assert.True(t, m.loading)

	m = loaded(t, m, a)

	assert.False(t, m.loading)
	assert.Len(t, m.quizzes, 2)
	assert.Contains(t, m.View(), "2+2?")
	assert.Contains(t, m.View(), "Capital of France?")
}

func TestInit_LoadError(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().ListQuizzes(gomock.Any()).Return(nil, errors.New("dial tcp 127.0.0.1:8080: connection refused"))

	m = run(t, m, m.Init())

	assert.False(t, m.loading)
	assert.Equal(t, "Network is down or the server is unavailable", m.errMsg)
	assert.Contains(t, m.View(), "Network is down")
}

func TestInit_EmptyList(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().ListQuizzes(gomock.Any()).Return([]models.Quiz{}, nil)

	m = run(t, m, m.Init())

	assert.Contains(t, m.View(), "No quizzes yet")
}

func TestList_CursorIsBounded(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, runes("k"))
	assert.Equal(t, 0, m.idx)
}

func TestList_Reload(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	a.EXPECT().ListQuizzes(gomock.Any()).Return(testQuizzes[:1], nil)
	m, cmd := press(t, m, runes("r"))
	assert.True(t, m.loading)

	m = run(t, m, cmd)
	assert.False(t, m.loading)
	assert.Len(t, m.quizzes, 1)
}

func TestList_ReloadClampsCursor(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.idx)

	a.EXPECT().ListQuizzes(gomock.Any()).Return(testQuizzes[:1], nil)
	m, cmd := press(t, m, runes("r"))
	m = run(t, m, cmd)

	assert.Equal(t, 0, m.idx)
}

func TestList_CopyQuizID(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("c"))

	assert.Equal(t, "q-2", copied)
	assert.Equal(t, "Quiz id copied", m.status)
}

func TestList_CopyError(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m.copyText = func(string) error { return errors.New("no clipboard") }

	m, _ = press(t, m, runes("c"))

	assert.Equal(t, "Copy failed: no clipboard", m.errMsg)
}

func TestList_CopyWithoutQuizzes(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().ListQuizzes(gomock.Any()).Return(nil, nil)
	m = run(t, m, m.Init())
	m.copyText = func(string) error {
		t.Fatal("copy must not be called")
		return nil
	}

	m, _ = press(t, m, runes("c"))

	assert.Equal(t, "Nothing to copy", m.status)
}

func TestList_Quit(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	_, cmd := press(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestList_OpenQuizNotFound(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	a.EXPECT().GetQuiz(gomock.Any(), "q-1").Return(models.Quiz{}, fmt.Errorf("get quiz: %w", adapter.ErrNotFound))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.opening)

	m = run(t, m, cmd)

	assert.False(t, m.opening)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Quiz not found", m.errMsg)
}

func openQuiz(t *testing.T, m model, a *mock.MockQuizAdapter, q models.Quiz) model {
	t.Helper()
	a.EXPECT().GetQuiz(gomock.Any(), q.ID).Return(q, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)
	require.Equal(t, screenPlay, m.screen)
	return m
}

func TestPlay_Correct(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[0])

	assert.Contains(t, m.View(), "1. 3")
	assert.Contains(t, m.View(), "2. 4")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.option)

	a.EXPECT().PlayQuiz(gomock.Any(), "q-1", 1).Return(models.PlayResult{IsCorrect: true}, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.playing)

	m = run(t, m, cmd)

	require.NotNil(t, m.result)
	assert.True(t, m.result.IsCorrect)
	assert.Contains(t, m.View(), "Correct!")
}

func TestPlay_Wrong(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[0])

	a.EXPECT().PlayQuiz(gomock.Any(), "q-1", 0).Return(models.PlayResult{IsCorrect: false}, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	require.NotNil(t, m.result)
	assert.False(t, m.result.IsCorrect)
	assert.Contains(t, m.View(), "Wrong")
}

func TestPlay_Error(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[0])

	a.EXPECT().PlayQuiz(gomock.Any(), "q-1", 0).Return(models.PlayResult{}, errors.New("boom"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	assert.Nil(t, m.result)
	assert.Equal(t, "boom", m.errMsg)
}

func TestPlay_MovingCursorClearsResult(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[1])

	a.EXPECT().PlayQuiz(gomock.Any(), "q-2", 0).Return(models.PlayResult{IsCorrect: true}, nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)
	require.NotNil(t, m.result)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, m.result)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.option)
}

func TestPlay_EscGoesBack(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[0])

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, m.screen)
	assert.Contains(t, m.View(), "QUIZZES")
}

func TestPlay_QDoesNotQuit(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)
	m = openQuiz(t, m, a, testQuizzes[0])

	m, cmd := press(t, m, runes("q"))

	assert.Nil(t, cmd)
	assert.Equal(t, screenPlay, m.screen)
}

func TestBuildInfo(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	a.EXPECT().Version(gomock.Any()).Return("0.9.0", nil)
	m, cmd := press(t, m, runes("v"))
	require.Equal(t, screenBuildInfo, m.screen)
	m = run(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Commit: abc")
	assert.Contains(t, view, "Server version: 0.9.0")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
}

func TestBuildInfo_ServerVersionUnavailable(t *testing.T) {
	m, a := newTestModel(t)
	m = loaded(t, m, a)

	a.EXPECT().Version(gomock.Any()).Return("", errors.New("boom"))
	m, cmd := press(t, m, runes("v"))
	m = run(t, m, cmd)

	assert.Contains(t, m.View(), "Server version: N/A")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not found", err: fmt.Errorf("x: %w", adapter.ErrNotFound), want: "Quiz not found"},
		{name: "timeout", err: context.DeadlineExceeded, want: "Network is down or the server is unavailable"},
		{name: "other", err: errors.New("bad request"), want: "bad request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "привет", fitText("привет", 6))
}
