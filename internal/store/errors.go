// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClaimAlreadyExists is returned when a claim with the same id is
	// already persisted.
	ErrClaimAlreadyExists = errors.New("claim already exists")

	// ErrClaimNotFound is returned when no claim matches the requested id.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrNoteNotFound is returned when no note matches the requested
	// claim id and note id pair.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteAlreadyExists is returned by backends with conditional writes
	// when two concurrent adds computed the same next note id.
	ErrNoteAlreadyExists = errors.New("note already exists")
)

// Document backend errors. Returned (wrapped) when the JSON document holding
// a whole collection cannot be read, decoded, encoded or written.
var (
	ErrReadingDocument  = errors.New("error reading document")
	ErrDecodingDocument = errors.New("error decoding document")
	ErrEncodingDocument = errors.New("error encoding document")
	ErrWritingDocument  = errors.New("error writing document")
)

// Remote backend errors.
var (
	// ErrDynamoRequest wraps every failed DynamoDB call that is not a
	// conditional check failure.
	ErrDynamoRequest = errors.New("dynamodb request failed")

	// ErrObjectStoreRequest wraps every failed object store call other than
	// a missing object.
	ErrObjectStoreRequest = errors.New("object store request failed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
