// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/models"
)

type noteService struct {
	notes store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		logger: logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	notes, err := s.notes.ListNotes(ctx, claimID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.ListNotes").Str("claim_id", claimID).Msg("error listing notes")
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, claimID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (s *noteService) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := s.notes.AddNote(ctx, claimID, strings.TrimSpace(content))
	if err != nil {
		log.Err(err).Str("func", "*noteService.AddNote").Str("claim_id", claimID).Msg("error adding note")
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}

	log.Info().Str("claim_id", claimID).Str("note_id", note.NoteID).Msg("note added")
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	note, err := s.notes.UpdateNote(ctx, claimID, noteID, strings.TrimSpace(content))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteService.UpdateNote").
			Str("claim_id", claimID).
			Str("note_id", noteID).
			Msg("error updating note")
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	deletion, err := s.notes.DeleteNote(ctx, claimID, noteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteService.DeleteNote").
			Str("claim_id", claimID).
			Str("note_id", noteID).
			Msg("error deleting note")
		return models.NoteDeletion{}, fmt.Errorf("delete note: %w", err)
	}

	return deletion, nil
}
