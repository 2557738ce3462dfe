// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for claims and notes.
//
// Every backend satisfies [ClaimRepository] and/or [NoteRepository]:
//   - document repositories keep a whole collection as one pretty-printed
//     JSON array, either in a local file or in an S3-compatible object;
//   - DynamoDB repositories use one item per claim or note;
//   - SQL repositories run on PostgreSQL (pgx) or SQLite.
//
// [NewStorages] picks the backends from configuration once at startup and
// wraps managed backends with a read fallback onto the local files.
package store

import (
	"context"

	"github.com/MKhiriev/go-claim-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator,blob

// ClaimRepository persists claims.
type ClaimRepository interface {
	// CreateClaim stores claim and returns it. Fails with
	// [ErrClaimAlreadyExists] when the id is taken.
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)

	// GetClaim returns the claim with id or [ErrClaimNotFound].
	GetClaim(ctx context.Context, id string) (models.Claim, error)

	// UpdateClaimSummary overwrites the summary and timestamp of an existing
	// claim and returns the updated claim, or fails with [ErrClaimNotFound].
	UpdateClaimSummary(ctx context.Context, id string, summary models.Summary, updatedAt string) (models.Claim, error)
}

// NoteRepository persists notes scoped by claim id.
type NoteRepository interface {
	// ListNotes returns all notes of a claim. An unknown claim yields an
	// empty slice.
	ListNotes(ctx context.Context, claimID string) ([]models.Note, error)

	// GetNote returns a single note or [ErrNoteNotFound].
	GetNote(ctx context.Context, claimID, noteID string) (models.Note, error)

	// AddNote assigns the next note id of the claim, stores the note and
	// returns it.
	AddNote(ctx context.Context, claimID, content string) (models.Note, error)

	// UpdateNote replaces the content of an existing note or fails with
	// [ErrNoteNotFound].
	UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error)

	// DeleteNote removes a note or fails with [ErrNoteNotFound].
	DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// blob is a single opaque document: a local file or an object in a bucket.
type blob interface {
	// Load returns the document content. found is false when the document
	// does not exist yet.
	Load(ctx context.Context) (data []byte, found bool, err error)

	// Store replaces the document content.
	Store(ctx context.Context, data []byte) error

	// Name identifies the document in logs.
	Name() string
}
