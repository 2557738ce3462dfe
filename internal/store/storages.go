// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
)

// Backend names used in logs.
const (
	BackendFile   = "file"
	BackendSQL    = "sql"
	BackendDynamo = "dynamodb"
	BackendObject = "object"
)

// Storages holds the repositories selected for this process.
type Storages struct {
	ClaimRepository ClaimRepository
	NoteRepository  NoteRepository

	ClaimBackend string
	NoteBackend  string

	closers []io.Closer
}

// NewStorages selects the claim and note backends from cfg.
//
// Claims: SQL when a DSN is set, else DynamoDB when a claims table is set,
// else the local file. Notes: SQL, else DynamoDB notes table, else the object
// store bucket, else the local file. Every managed backend is wrapped with a
// read fallback onto the local files in cfg.Files.DataDir.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	localClaims := NewFileClaimRepository(filepath.Join(cfg.Files.DataDir, claimsDocumentName), log)
	localNotes := NewFileNoteRepository(filepath.Join(cfg.Files.DataDir, notesDocumentName), log)

	s := &Storages{
		ClaimRepository: localClaims,
		NoteRepository:  localNotes,
		ClaimBackend:    BackendFile,
		NoteBackend:     BackendFile,
	}

	if cfg.DB.DSN != "" {
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)

		s.ClaimRepository = NewFallbackClaimRepository(NewClaimRepository(db, log), localClaims, BackendSQL)
		s.NoteRepository = NewFallbackNoteRepository(NewNoteRepository(db, log), localNotes, BackendSQL)
		s.ClaimBackend, s.NoteBackend = BackendSQL, BackendSQL
		return s.logged(log), nil
	}

	if cfg.Dynamo.ClaimsTable != "" || cfg.Dynamo.NotesTable != "" {
		client, err := NewDynamoClient(ctx, cfg.Dynamo)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error creating dynamodb client")
			return nil, err
		}

		if cfg.Dynamo.ClaimsTable != "" {
			s.ClaimRepository = NewFallbackClaimRepository(
				NewDynamoClaimRepository(client, cfg.Dynamo.ClaimsTable, log), localClaims, BackendDynamo)
			s.ClaimBackend = BackendDynamo
		}
		if cfg.Dynamo.NotesTable != "" {
			s.NoteRepository = NewFallbackNoteRepository(
				NewDynamoNoteRepository(client, cfg.Dynamo.NotesTable, log), localNotes, BackendDynamo)
			s.NoteBackend = BackendDynamo
		}
	}

	if s.NoteBackend == BackendFile && cfg.Objects.Bucket != "" {
		objects, err := newMinioObjects(ctx, cfg.Objects)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error creating object store client")
			return nil, err
		}

		s.NoteRepository = NewFallbackNoteRepository(
			NewObjectNoteRepository(objects, cfg.Objects.Bucket, cfg.Objects.NotesKey, log), localNotes, BackendObject)
		s.NoteBackend = BackendObject
	}

	return s.logged(log), nil
}

// NewObjectNoteRepository returns a [NoteRepository] keeping all notes in a
// single JSON object.
func NewObjectNoteRepository(client objectAPI, bucket, key string, log *logger.Logger) NoteRepository {
	log.Debug().Str("bucket", bucket).Str("key", key).Msg("creating object store note repository")
	return newDocumentNoteRepository(newObjectBlob(client, bucket, key), log)
}

func (s *Storages) logged(log *logger.Logger) *Storages {
	log.Info().Str("claims", s.ClaimBackend).Str("notes", s.NoteBackend).Msg("storage backends selected")
	return s
}

// Close releases connections held by managed backends.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
