// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/validators"
	"github.com/MKhiriev/go-claim-keeper/models"
)

// claimValidationService validates input before it reaches the wrapped
// ClaimService.
type claimValidationService struct {
	inner     ClaimService
	validator validators.Validator
	logger    *logger.Logger
}

// NewClaimValidationService returns a ClaimServiceWrapper that rejects claims
// without an id.
func NewClaimValidationService(validator validators.Validator, logger *logger.Logger) ClaimServiceWrapper {
	return &claimValidationService{
		validator: validator,
		logger:    logger,
	}
}

func (v *claimValidationService) Wrap(service ClaimService) ClaimService {
	v.inner = service
	return v
}

func (v *claimValidationService) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	if err := v.validator.Validate(ctx, claim, validators.FieldClaimID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*claimValidationService.CreateClaim").Msg("invalid claim")
		return models.Claim{}, fmt.Errorf("validate claim: %w", err)
	}

	return v.inner.CreateClaim(ctx, claim)
}

func (v *claimValidationService) GetClaim(ctx context.Context, claimID string) (models.Claim, error) {
	if err := v.validator.Validate(ctx, models.Claim{ID: claimID}, validators.FieldClaimID); err != nil {
		return models.Claim{}, fmt.Errorf("validate claim: %w", err)
	}

	return v.inner.GetClaim(ctx, claimID)
}

func (v *claimValidationService) GetClaimDetails(ctx context.Context, claimID string) (models.ClaimDetails, error) {
	if err := v.validator.Validate(ctx, models.Claim{ID: claimID}, validators.FieldClaimID); err != nil {
		return models.ClaimDetails{}, fmt.Errorf("validate claim: %w", err)
	}

	return v.inner.GetClaimDetails(ctx, claimID)
}

// noteValidationService validates input before it reaches the wrapped
// NoteService.
type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
	logger    *logger.Logger
}

func NewNoteValidationService(validator validators.Validator, logger *logger.Logger) NoteServiceWrapper {
	return &noteValidationService{
		validator: validator,
		logger:    logger,
	}
}

func (v *noteValidationService) Wrap(service NoteService) NoteService {
	v.inner = service
	return v
}

func (v *noteValidationService) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{ClaimID: claimID}, validators.FieldClaimID); err != nil {
		return nil, fmt.Errorf("validate note: %w", err)
	}

	return v.inner.ListNotes(ctx, claimID)
}

func (v *noteValidationService) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	note := models.Note{ClaimID: claimID, NoteID: noteID}
	if err := v.validator.Validate(ctx, note, validators.FieldClaimID, validators.FieldNoteID); err != nil {
		return models.Note{}, fmt.Errorf("validate note: %w", err)
	}

	return v.inner.GetNote(ctx, claimID, noteID)
}

func (v *noteValidationService) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	note := models.Note{ClaimID: claimID, Content: content}
	if err := v.validator.Validate(ctx, note, validators.FieldClaimID, validators.FieldContent); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*noteValidationService.AddNote").Msg("invalid note")
		return models.Note{}, fmt.Errorf("validate note: %w", err)
	}

	return v.inner.AddNote(ctx, claimID, content)
}

func (v *noteValidationService) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	note := models.Note{ClaimID: claimID, NoteID: noteID, Content: content}
	if err := v.validator.Validate(ctx, note, validators.FieldClaimID, validators.FieldNoteID, validators.FieldContent); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*noteValidationService.UpdateNote").Msg("invalid note")
		return models.Note{}, fmt.Errorf("validate note: %w", err)
	}

	return v.inner.UpdateNote(ctx, claimID, noteID, content)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	note := models.Note{ClaimID: claimID, NoteID: noteID}
	if err := v.validator.Validate(ctx, note, validators.FieldClaimID, validators.FieldNoteID); err != nil {
		return models.NoteDeletion{}, fmt.Errorf("validate note: %w", err)
	}

	return v.inner.DeleteNote(ctx, claimID, noteID)
}
