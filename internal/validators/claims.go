// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldClaimID targets the claim identifier of a claim or a note.
	FieldClaimID = "claim_id"

	// FieldNoteID targets the per-claim note identifier.
	FieldNoteID = "note_id"

	// FieldContent targets the text of a note.
	FieldContent = "content"
)

// ClaimValidator implements [Validator] for claims and notes. Text fields are
// considered empty when they contain only whitespace.
type ClaimValidator struct{}

// NewClaimValidator constructs a ClaimValidator and returns it as the
// Validator interface.
func NewClaimValidator() Validator {
	return &ClaimValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Claim / *models.Claim (default fields: claim id)
//   - models.Note / *models.Note (default fields: claim id, content)
//
// Returns ErrUnsupportedType for anything else.
func (v *ClaimValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Claim:
		return v.validateClaim(ctx, value, fields...)
	case *models.Claim:
		return v.validateClaim(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClaimValidator) validateClaim(_ context.Context, claim models.Claim, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClaimID}
	}

	for _, f := range fields {
		switch f {
		case FieldClaimID:
			if isBlank(claim.ID) {
				return ErrEmptyClaimID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ClaimValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClaimID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldClaimID:
			if isBlank(note.ClaimID) {
				return ErrEmptyClaimID
			}
		case FieldNoteID:
			if isBlank(note.NoteID) {
				return ErrEmptyNoteID
			}
		case FieldContent:
			if isBlank(note.Content) {
				return ErrEmptyNoteContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
