// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/mock"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/internal/validators"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteService(t *testing.T) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	notes := mock.NewMockNoteRepository(gomock.NewController(t))

	svc := NewNoteValidationService(validators.NewClaimValidator(), logger.Nop()).
		Wrap(NewNoteService(notes, logger.Nop()))

	return svc, notes
}

func TestNoteService_AddNote_TrimsContent(t *testing.T) {
	svc, notes := newTestNoteService(t)

	want := models.Note{ClaimID: "C-1", NoteID: "N-001", Content: "Missing receipt"}
	notes.EXPECT().AddNote(gomock.Any(), "C-1", "Missing receipt").Return(want, nil)

	got, err := svc.AddNote(context.Background(), "C-1", "  Missing receipt\n")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_AddNote_EmptyContent(t *testing.T) {
	svc, _ := newTestNoteService(t)

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := svc.AddNote(context.Background(), "C-1", content)
		assert.ErrorIs(t, err, validators.ErrEmptyNoteContent, "content %q", content)
	}
}

func TestNoteService_UpdateNote(t *testing.T) {
	svc, notes := newTestNoteService(t)

	want := models.Note{ClaimID: "C-1", NoteID: "N-002", Content: "Receipt uploaded"}
	notes.EXPECT().UpdateNote(gomock.Any(), "C-1", "N-002", "Receipt uploaded").Return(want, nil)

	got, err := svc.UpdateNote(context.Background(), "C-1", "N-002", " Receipt uploaded ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_UpdateNote_Errors(t *testing.T) {
	svc, notes := newTestNoteService(t)

	_, err := svc.UpdateNote(context.Background(), "C-1", "N-001", " ")
	assert.ErrorIs(t, err, validators.ErrEmptyNoteContent)

	_, err = svc.UpdateNote(context.Background(), "C-1", "", "text")
	assert.ErrorIs(t, err, validators.ErrEmptyNoteID)

	notes.EXPECT().UpdateNote(gomock.Any(), "C-1", "N-404", "text").Return(models.Note{}, store.ErrNoteNotFound)
	_, err = svc.UpdateNote(context.Background(), "C-1", "N-404", "text")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_ListNotes(t *testing.T) {
	svc, notes := newTestNoteService(t)

	notes.EXPECT().ListNotes(gomock.Any(), "C-1").Return(nil, nil)

	got, err := svc.ListNotes(context.Background(), "C-1")

	require.NoError(t, err)
	assert.Equal(t, []models.Note{}, got)
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	svc, notes := newTestNoteService(t)

	notes.EXPECT().GetNote(gomock.Any(), "C-1", "N-009").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(context.Background(), "C-1", "N-009")

	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_DeleteNote(t *testing.T) {
	svc, notes := newTestNoteService(t)

	want := models.NoteDeletion{Deleted: true, ClaimID: "C-1", NoteID: "N-001"}
	notes.EXPECT().DeleteNote(gomock.Any(), "C-1", "N-001").Return(want, nil)

	got, err := svc.DeleteNote(context.Background(), "C-1", "N-001")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	svc, notes := newTestNoteService(t)

	notes.EXPECT().DeleteNote(gomock.Any(), "C-1", "N-404").Return(models.NoteDeletion{}, store.ErrNoteNotFound)

	_, err := svc.DeleteNote(context.Background(), "C-1", "N-404")

	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}
