package http

import (
	"time"

	"github.com/MKhiriev/go-quiz/internal/config"
	"github.com/MKhiriev/go-quiz/internal/logger"
	"github.com/MKhiriev/go-quiz/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
