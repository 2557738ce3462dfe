// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	// summarizeLimiter throttles POST /claims/{id}/summarize. Nil disables it.
	summarizeLimiter *rate.Limiter

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}

	if cfg.SummarizeRate > 0 {
		burst := max(cfg.SummarizeBurst, 1)
		h.summarizeLimiter = rate.NewLimiter(rate.Limit(cfg.SummarizeRate), burst)
	}

	logger.Info().Msg("http handler created")
	return h
}
