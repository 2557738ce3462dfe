// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-claim-keeper/models"
)

// ClaimService creates and looks up claims.
type ClaimService interface {
	// CreateClaim normalizes and persists a new claim.
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)

	// GetClaim returns a claim without its notes.
	GetClaim(ctx context.Context, claimID string) (models.Claim, error)

	// GetClaimDetails returns a claim together with all of its notes.
	GetClaimDetails(ctx context.Context, claimID string) (models.ClaimDetails, error)
}

// NoteService manages the notes of a claim. Content is trimmed before it is
// stored.
type NoteService interface {
	ListNotes(ctx context.Context, claimID string) ([]models.Note, error)
	GetNote(ctx context.Context, claimID, noteID string) (models.Note, error)
	AddNote(ctx context.Context, claimID, content string) (models.Note, error)
	UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error)
	DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error)
}

// SummaryService summarizes a claim from its notes and persists the result.
type SummaryService interface {
	SummarizeClaim(ctx context.Context, claim models.Claim) (models.SummaryResponse, error)
}

// Summarizer produces a summary of a claim. It never fails: any model
// problem degrades to a templated summary.
type Summarizer interface {
	Summarize(ctx context.Context, claim models.Claim, notesText string) models.SummaryResult
}

// AuthService mints and verifies bearer tokens.
type AuthService interface {
	// Enabled reports whether a token sign key is configured.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports static application information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClaimServiceWrapper defines middleware composition for ClaimService.
// Implementations wrap an existing ClaimService to add behavior such as
// logging or validating.
type ClaimServiceWrapper interface {
	Wrap(ClaimService) ClaimService
}

// NoteServiceWrapper defines middleware composition for NoteService.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
