// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

const notesDocumentName = "notes.json"

// documentNoteRepository keeps the notes of every claim in one JSON document.
// Notes of a claim are returned in the order they were added.
type documentNoteRepository struct {
	doc    *document[models.Note]
	logger *logger.Logger
}

// NewFileNoteRepository returns a [NoteRepository] backed by path.
func NewFileNoteRepository(path string, log *logger.Logger) NoteRepository {
	log.Debug().Str("path", path).Msg("creating file note repository")
	return newDocumentNoteRepository(newFileBlob(path), log)
}

func newDocumentNoteRepository(b blob, log *logger.Logger) *documentNoteRepository {
	return &documentNoteRepository{
		doc:    newDocument[models.Note](b),
		logger: log,
	}
}

func (r *documentNoteRepository) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	notes, err := r.doc.read(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentNoteRepository.ListNotes").
			Str("claim_id", claimID).Msg("error reading notes")
		return nil, err
	}

	return notesOfClaim(notes, claimID), nil
}

func (r *documentNoteRepository) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	notes, err := r.doc.read(ctx)
	if err != nil {
		return models.Note{}, err
	}

	i := indexOfNote(notes, claimID, noteID)
	if i < 0 {
		return models.Note{}, noteNotFound(claimID, noteID)
	}

	return notes[i], nil
}

func (r *documentNoteRepository) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	var note models.Note
	err := r.doc.update(ctx, func(notes []models.Note) ([]models.Note, error) {
		note = models.Note{
			ClaimID: claimID,
			NoteID:  models.NextNoteID(notesOfClaim(notes, claimID)),
			Content: content,
		}
		return append(notes, note), nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentNoteRepository.AddNote").
			Str("claim_id", claimID).Msg("error adding note")
		return models.Note{}, err
	}

	return note, nil
}

func (r *documentNoteRepository) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	var note models.Note
	err := r.doc.update(ctx, func(notes []models.Note) ([]models.Note, error) {
		i := indexOfNote(notes, claimID, noteID)
		if i < 0 {
			return nil, noteNotFound(claimID, noteID)
		}

		notes[i].Content = content
		note = notes[i]
		return notes, nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (r *documentNoteRepository) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	err := r.doc.update(ctx, func(notes []models.Note) ([]models.Note, error) {
		i := indexOfNote(notes, claimID, noteID)
		if i < 0 {
			return nil, noteNotFound(claimID, noteID)
		}

		return append(notes[:i], notes[i+1:]...), nil
	})
	if err != nil {
		return models.NoteDeletion{}, err
	}

	return models.NoteDeletion{Deleted: true, ClaimID: claimID, NoteID: noteID}, nil
}

func notesOfClaim(notes []models.Note, claimID string) []models.Note {
	result := make([]models.Note, 0)
	for _, note := range notes {
		if note.ClaimID == claimID {
			result = append(result, note)
		}
	}
	return result
}

func indexOfNote(notes []models.Note, claimID, noteID string) int {
	for i := range notes {
		if notes[i].ClaimID == claimID && notes[i].NoteID == noteID {
			return i
		}
	}
	return -1
}

func noteNotFound(claimID, noteID string) error {
	return fmt.Errorf("%w: %s for claim %s", ErrNoteNotFound, noteID, claimID)
}
