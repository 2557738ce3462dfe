// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/models"
)

type claimService struct {
	claims store.ClaimRepository
	notes  store.NoteRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewClaimService builds the claim service on top of the given repositories.
// Validation is added separately by [NewClaimValidationService].
func NewClaimService(claims store.ClaimRepository, notes store.NoteRepository, logger *logger.Logger) ClaimService {
	return &claimService{
		claims: claims,
		notes:  notes,
		now:    time.Now,
		logger: logger,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	created, err := s.claims.CreateClaim(ctx, claim.Normalize(s.now()))
	if err != nil {
		log.Err(err).Str("func", "*claimService.CreateClaim").Str("claim_id", claim.ID).Msg("error creating claim")
		return models.Claim{}, fmt.Errorf("create claim: %w", err)
	}

	log.Info().Str("claim_id", created.ID).Msg("claim created")
	return created, nil
}

func (s *claimService) GetClaim(ctx context.Context, claimID string) (models.Claim, error) {
	claim, err := s.claims.GetClaim(ctx, claimID)
	if err != nil {
		return models.Claim{}, fmt.Errorf("get claim: %w", err)
	}

	return claim, nil
}

func (s *claimService) GetClaimDetails(ctx context.Context, claimID string) (models.ClaimDetails, error) {
	log := logger.FromContext(ctx)

	claim, err := s.GetClaim(ctx, claimID)
	if err != nil {
		return models.ClaimDetails{}, err
	}

	notes, err := s.notes.ListNotes(ctx, claim.ID)
	if err != nil {
		log.Err(err).Str("func", "*claimService.GetClaimDetails").Str("claim_id", claimID).Msg("error listing notes")
		return models.ClaimDetails{}, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return models.ClaimDetails{Claim: claim, Notes: notes}, nil
}
