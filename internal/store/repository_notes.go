// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository] working
// against the "notes" table, keyed by (claim_id, note_id).
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating sql note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *noteRepository) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	return r.listNotes(ctx, r.db, claimID)
}

func (r *noteRepository) listNotes(ctx context.Context, q queryer, claimID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(r.db.builder, claimID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.listNotes").Str("claim_id", claimID).Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ClaimID, &note.NoteID, &note.Content); err != nil {
			log.Err(err).Str("func", "*noteRepository.listNotes").Msg("error scanning note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	query, args, err := buildSelectNoteQuery(r.db.builder, claimID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.ClaimID, &note.NoteID, &note.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, noteNotFound(claimID, noteID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.GetNote").
			Str("claim_id", claimID).Str("note_id", noteID).Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// AddNote reads the claim's notes and inserts the next one inside a single
// transaction. A concurrent insert of the same id violates the primary key
// and yields [ErrNoteAlreadyExists].
func (r *noteRepository) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.AddNote").Msg("error beginning transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	notes, err := r.listNotes(ctx, tx, claimID)
	if err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ClaimID: claimID,
		NoteID:  models.NextNoteID(notes),
		Content: content,
	}

	query, args, err := buildInsertNoteQuery(r.db.builder, note.ClaimID, note.NoteID, note.Content)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.db.isDuplicate(err) {
			return models.Note{}, fmt.Errorf("%w: %s for claim %s", ErrNoteAlreadyExists, note.NoteID, claimID)
		}
		log.Err(err).Str("func", "*noteRepository.AddNote").Str("claim_id", claimID).Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*noteRepository.AddNote").Msg("error committing transaction")
		return models.Note{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(r.db.builder, claimID, noteID, content)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, "*noteRepository.UpdateNote", query, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, noteNotFound(claimID, noteID)
		}
		return models.Note{}, err
	}

	return models.Note{ClaimID: claimID, NoteID: noteID, Content: content}, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	query, args, err := buildDeleteNoteQuery(r.db.builder, claimID, noteID)
	if err != nil {
		return models.NoteDeletion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, "*noteRepository.DeleteNote", query, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NoteDeletion{}, noteNotFound(claimID, noteID)
		}
		return models.NoteDeletion{}, err
	}

	return models.NoteDeletion{Deleted: true, ClaimID: claimID, NoteID: noteID}, nil
}

// execAffectingOne runs a statement and reports [sql.ErrNoRows] when it
// touched no row.
func (r *noteRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
