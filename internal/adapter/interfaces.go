// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-claim-keeper/models"
)

// ClaimsAPI is the client-side view of the claims HTTP API. Every method maps
// one endpoint; non-2xx responses are returned as errors wrapping one of the
// sentinels declared in errors.go.
type ClaimsAPI interface {
	// SetToken sets the bearer token sent with every subsequent request.
	// An empty token disables the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently in use.
	Token() string

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)

	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)
	GetClaim(ctx context.Context, claimID string) (models.ClaimDetails, error)

	ListNotes(ctx context.Context, claimID string) ([]models.Note, error)
	GetNote(ctx context.Context, claimID, noteID string) (models.Note, error)
	AddNote(ctx context.Context, claimID, content string) (models.Note, error)
	UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error)
	DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error)

	// Summarize asks the server to summarize the claim and persist the result.
	Summarize(ctx context.Context, claimID string) (models.SummaryResponse, error)
}
