// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

// fallbackClaimRepository reads from a managed primary backend and falls
// back to the local file store. Creates go to the primary only.
type fallbackClaimRepository struct {
	primary ClaimRepository
	local   ClaimRepository
	backend string
}

// NewFallbackClaimRepository wraps primary so that claim lookups and summary
// write-backs that miss (or fail) on primary are retried on local.
func NewFallbackClaimRepository(primary, local ClaimRepository, backend string) ClaimRepository {
	return &fallbackClaimRepository{primary: primary, local: local, backend: backend}
}

func (r *fallbackClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	return r.primary.CreateClaim(ctx, claim)
}

// GetClaim tries the primary first. Any primary error, not only a miss, is
// swallowed and the local store answers.
func (r *fallbackClaimRepository) GetClaim(ctx context.Context, id string) (models.Claim, error) {
	claim, err := r.primary.GetClaim(ctx, id)
	if err == nil {
		return claim, nil
	}
	if !errors.Is(err, ErrClaimNotFound) {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*fallbackClaimRepository.GetClaim").
			Str("backend", r.backend).Str("claim_id", id).Msg("primary claim store failed, reading local file")
	}

	return r.local.GetClaim(ctx, id)
}

// UpdateClaimSummary falls back only when the claim is missing on the
// primary; transport errors are returned.
func (r *fallbackClaimRepository) UpdateClaimSummary(ctx context.Context, id string, summary models.Summary, updatedAt string) (models.Claim, error) {
	claim, err := r.primary.UpdateClaimSummary(ctx, id, summary, updatedAt)
	if errors.Is(err, ErrClaimNotFound) {
		return r.local.UpdateClaimSummary(ctx, id, summary, updatedAt)
	}

	return claim, err
}

// fallbackNoteRepository reads notes from a managed primary backend and
// falls back to the local file store when the primary fails. Writes go to
// the primary only.
type fallbackNoteRepository struct {
	primary NoteRepository
	local   NoteRepository
	backend string
}

func NewFallbackNoteRepository(primary, local NoteRepository, backend string) NoteRepository {
	return &fallbackNoteRepository{primary: primary, local: local, backend: backend}
}

func (r *fallbackNoteRepository) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	notes, err := r.primary.ListNotes(ctx, claimID)
	if err == nil {
		return notes, nil
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*fallbackNoteRepository.ListNotes").
		Str("backend", r.backend).Str("claim_id", claimID).Msg("primary note store failed, reading local file")
	return r.local.ListNotes(ctx, claimID)
}

func (r *fallbackNoteRepository) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	note, err := r.primary.GetNote(ctx, claimID, noteID)
	if err == nil || errors.Is(err, ErrNoteNotFound) {
		return note, err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*fallbackNoteRepository.GetNote").
		Str("backend", r.backend).Str("claim_id", claimID).Str("note_id", noteID).Msg("primary note store failed, reading local file")
	return r.local.GetNote(ctx, claimID, noteID)
}

func (r *fallbackNoteRepository) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	return r.primary.AddNote(ctx, claimID, content)
}

func (r *fallbackNoteRepository) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	return r.primary.UpdateNote(ctx, claimID, noteID, content)
}

func (r *fallbackNoteRepository) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	return r.primary.DeleteNote(ctx, claimID, noteID)
}
