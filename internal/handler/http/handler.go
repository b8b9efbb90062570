package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/microfund/go-microfund/internal/config"
	"github.com/microfund/go-microfund/internal/logger"
	"github.com/microfund/go-microfund/internal/metrics"
	"github.com/microfund/go-microfund/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer
	cfg      config.Server

	authLimiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  collector,
		gatherer: gatherer,
		cfg:      cfg,
		logger:   logger,
	}
}
