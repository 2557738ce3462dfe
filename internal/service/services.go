// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/internal/validators"
)

// Services aggregates every service the HTTP handlers depend on.
type Services struct {
	ClaimService   ClaimService
	NoteService    NoteService
	SummaryService SummaryService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. Claim and note services
// are wrapped with input validation.
func NewServices(storages *store.Storages, summarizer Summarizer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewClaimValidator()

	claimService := NewClaimValidationService(validator, logger).
		Wrap(NewClaimService(storages.ClaimRepository, storages.NoteRepository, logger))
	noteService := NewNoteValidationService(validator, logger).
		Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		ClaimService:   claimService,
		NoteService:    noteService,
		SummaryService: NewSummaryService(storages.ClaimRepository, storages.NoteRepository, summarizer, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
