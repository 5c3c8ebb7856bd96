package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz/internal/logger"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

// App runs the terminal client until the user quits.
type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp creates an App around ui.
func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrUINotProvided
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	if err := a.ui.Run(context.Background()); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
