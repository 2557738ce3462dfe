// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewClaimValidator
// ---------------------------------------------------------------------------

func TestNewClaimValidator(t *testing.T) {
	v := NewClaimValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewClaimValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		obj  any
		want error
	}{
		{"claim value", models.Claim{ID: "C-1"}, nil},
		{"claim pointer", &models.Claim{ID: "C-1"}, nil},
		{"note value", models.Note{ClaimID: "C-1", Content: "x"}, nil},
		{"note pointer", &models.Note{ClaimID: "C-1", Content: "x"}, nil},
		{"unsupported", "C-1", ErrUnsupportedType},
		{"nil", nil, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Claim
// ---------------------------------------------------------------------------

func TestValidate_Claim(t *testing.T) {
	v := NewClaimValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Claim{}), ErrEmptyClaimID)
	assert.ErrorIs(t, v.Validate(ctx, models.Claim{ID: "   "}), ErrEmptyClaimID)
	assert.NoError(t, v.Validate(ctx, models.Claim{ID: "C-1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Claim{ID: "C-1"}, FieldContent), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_Note
// ---------------------------------------------------------------------------

func TestValidate_Note(t *testing.T) {
	v := NewClaimValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		note   models.Note
		fields []string
		want   error
	}{
		{"valid defaults", models.Note{ClaimID: "C-1", Content: "Missing receipt"}, nil, nil},
		{"blank content", models.Note{ClaimID: "C-1", Content: " \t"}, nil, ErrEmptyNoteContent},
		{"empty claim id", models.Note{Content: "x"}, nil, ErrEmptyClaimID},
		{"note id not checked by default", models.Note{ClaimID: "C-1", Content: "x"}, nil, nil},
		{"note id required when scoped", models.Note{ClaimID: "C-1"}, []string{FieldClaimID, FieldNoteID}, ErrEmptyNoteID},
		{"content skipped when not scoped", models.Note{ClaimID: "C-1", NoteID: "N-001"}, []string{FieldClaimID, FieldNoteID}, nil},
		{"unknown field", models.Note{ClaimID: "C-1"}, []string{"status"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.note, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
