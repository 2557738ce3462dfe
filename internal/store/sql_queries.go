// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	claimsTable = "claims"
	notesTable  = "notes"
)

var (
	claimColumns = []string{"claim_id", "status", "policy_number", "customer", "updated_at", "summary"}
	noteColumns  = []string{"claim_id", "note_id", "content"}
)

// returning renders a RETURNING clause, supported by PostgreSQL and by
// SQLite since 3.35.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertClaimQuery(b sq.StatementBuilderType, row claimRow) (string, []any, error) {
	return b.Insert(claimsTable).
		Columns(claimColumns...).
		Values(row.ClaimID, row.Status, row.PolicyNumber, row.Customer, row.UpdatedAt, row.Summary).
		ToSql()
}

func buildSelectClaimQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(claimColumns...).
		From(claimsTable).
		Where(sq.Eq{"claim_id": id}).
		ToSql()
}

func buildUpdateClaimSummaryQuery(b sq.StatementBuilderType, id string, summary any, updatedAt string) (string, []any, error) {
	return b.Update(claimsTable).
		Set("summary", summary).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"claim_id": id}).
		Suffix(returning(claimColumns)).
		ToSql()
}

func buildSelectNotesQuery(b sq.StatementBuilderType, claimID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"claim_id": claimID}).
		OrderBy("note_id").
		ToSql()
}

func buildSelectNoteQuery(b sq.StatementBuilderType, claimID, noteID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"claim_id": claimID, "note_id": noteID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, claimID, noteID, content string) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(claimID, noteID, content).
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, claimID, noteID, content string) (string, []any, error) {
	return b.Update(notesTable).
		Set("content", content).
		Where(sq.Eq{"claim_id": claimID, "note_id": noteID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, claimID, noteID string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"claim_id": claimID, "note_id": noteID}).
		ToSql()
}
