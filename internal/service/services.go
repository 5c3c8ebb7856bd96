package service

import (
	"fmt"

	"github.com/MKhiriev/go-quiz/internal/config"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/store"
	"github.com/MKhiriev/go-quiz/internal/utils"
	"github.com/MKhiriev/go-quiz/internal/validators"
)

type Services struct {
	QuizService    QuizService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		QuizService:    NewQuizService(storages.QuizRepository, validators.NewQuizValidator(), utils.NewUUIDGenerator(), logger),
		AuthService:    NewAuthService(storages.UserRepository, validators.NewUserValidator(), cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
