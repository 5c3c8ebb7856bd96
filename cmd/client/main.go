package main

import (
	"os"

	"github.com/MKhiriev/go-quiz/internal/adapter"
	"github.com/MKhiriev/go-quiz/internal/client"
	"github.com/MKhiriev/go-quiz/internal/config"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/tui"
	"github.com/MKhiriev/go-quiz/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-quiz-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("go-quiz-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	quizAdapter, err := adapter.NewHTTPQuizAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create quiz adapter")
	}

	ui := tui.New(quizAdapter, buildInfo, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
