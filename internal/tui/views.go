package tui

import (
	"fmt"
	"strings"
)

const maxQuestionWidth = 60

func (m model) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.quizzes) == 0:
		b.WriteString("No quizzes yet\n")
	default:
		for i, q := range m.quizzes {
			line := fmt.Sprintf("%s (%d options)", fitText(q.Question, maxQuestionWidth), len(q.Options))
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.opening {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Opening quiz...\n")
	}
	m.writeFooter(&b)

	title := "QUIZZES"
	if m.user != "" {
		title += "  (" + m.user + ")"
	}

	hotKeys := "↑/↓: move  enter: play  r: reload  c: copy id  v: about  q: quit\n  "
	if m.user != "" {
		hotKeys += "n: new  e: edit  d: delete  o: log out"
	} else {
		hotKeys += "l: log in  g: register"
	}

	return renderPage(title, b.String(), hotKeys)
}

func (m model) viewConfirmDelete() string {
	q, _ := m.current()

	content := fmt.Sprintf("Delete %q?\n\n", fitText(q.Question, maxQuestionWidth))
	if m.deleting {
		content += m.spinner.View() + " Deleting..."
	} else {
		content += "y: yes    n: no"
	}

	return renderPage("DELETE QUIZ", resultBoxStyle.Render(content), "")
}

func (m model) viewPlay() string {
	var b strings.Builder

	b.WriteString(m.quiz.Question)
	b.WriteString("\n\n")
	for i, opt := range m.quiz.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == m.option {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	switch {
	case m.playing:
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking...\n")
	case m.result != nil && m.result.IsCorrect:
		b.WriteString("\n")
		b.WriteString(resultBoxStyle.Render(correctStyle.Render("Correct!")))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString("\n")
		b.WriteString(resultBoxStyle.Render(wrongStyle.Render("Wrong")))
		b.WriteString("\n")
	}
	m.writeFooter(&b)

	return renderPage("PLAY", b.String(), "↑/↓: choose  enter: answer  esc: back")
}

func (m model) writeFooter(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}
