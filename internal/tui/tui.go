// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the go-quiz client.
//
// The UI has a quiz list and a play screen, both backed by an
// [adapter.QuizAdapter]. All network calls run as Bubble Tea commands so the
// interface stays responsive while a request is in flight.
package tui

import (
	"context"

	"github.com/MKhiriev/go-quiz/internal/adapter"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the quiz terminal interface.
type TUI struct {
	adapter   adapter.QuizAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates a TUI that talks to the server through quizAdapter.
func New(quizAdapter adapter.QuizAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		adapter:   quizAdapter,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.adapter, t.buildInfo, t.logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
