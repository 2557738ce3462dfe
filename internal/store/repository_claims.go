// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

// claimRepository is the SQL implementation of [ClaimRepository] working
// against the "claims" table. The summary is kept as a JSON text column.
type claimRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClaimRepository constructs a [ClaimRepository] backed by db.
func NewClaimRepository(db *DB, logger *logger.Logger) ClaimRepository {
	logger.Debug().Msg("creating sql claim repository")
	return &claimRepository{
		db:     db,
		logger: logger,
	}
}

// claimRow mirrors a row of the claims table.
type claimRow struct {
	ClaimID      string
	Status       string
	PolicyNumber string
	Customer     string
	UpdatedAt    string
	Summary      sql.NullString
}

func newClaimRow(claim models.Claim) (claimRow, error) {
	row := claimRow{
		ClaimID:      claim.ID,
		Status:       claim.Status,
		PolicyNumber: claim.PolicyNumber,
		Customer:     claim.Customer,
		UpdatedAt:    claim.UpdatedAt,
	}
	if claim.Summary != nil {
		summary, err := encodeSummary(*claim.Summary)
		if err != nil {
			return claimRow{}, err
		}
		row.Summary = summary
	}
	return row, nil
}

func (r claimRow) toModel() (models.Claim, error) {
	claim := models.Claim{
		ID:           r.ClaimID,
		Status:       r.Status,
		PolicyNumber: r.PolicyNumber,
		Customer:     r.Customer,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Summary.Valid && r.Summary.String != "" {
		var summary models.Summary
		if err := json.Unmarshal([]byte(r.Summary.String), &summary); err != nil {
			return models.Claim{}, fmt.Errorf("%w: decoding summary: %w", ErrScanningRow, err)
		}
		claim.Summary = &summary
	}
	return claim, nil
}

func (r *claimRow) scanTargets() []any {
	return []any{&r.ClaimID, &r.Status, &r.PolicyNumber, &r.Customer, &r.UpdatedAt, &r.Summary}
}

func encodeSummary(summary models.Summary) (sql.NullString, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("%w: encoding summary: %w", ErrBuildingSQLQuery, err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// CreateClaim inserts the claim. A primary key violation yields
// [ErrClaimAlreadyExists].
func (r *claimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	row, err := newClaimRow(claim)
	if err != nil {
		return models.Claim{}, err
	}

	query, args, err := buildInsertClaimQuery(r.db.builder, row)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.CreateClaim").Msg("error building query")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isDuplicate(err) {
			return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimAlreadyExists, claim.ID)
		}
		log.Err(err).Str("func", "*claimRepository.CreateClaim").Str("claim_id", claim.ID).Msg("error inserting claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return claim, nil
}

func (r *claimRepository) GetClaim(ctx context.Context, id string) (models.Claim, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClaimQuery(r.db.builder, id)
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row claimRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.GetClaim").Str("claim_id", id).Msg("error selecting claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.toModel()
}

// UpdateClaimSummary updates the row and reads it back through RETURNING.
func (r *claimRepository) UpdateClaimSummary(ctx context.Context, id string, summary models.Summary, updatedAt string) (models.Claim, error) {
	log := logger.FromContext(ctx)

	encoded, err := encodeSummary(summary)
	if err != nil {
		return models.Claim{}, err
	}

	query, args, err := buildUpdateClaimSummaryQuery(r.db.builder, id, encoded, updatedAt)
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row claimRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.UpdateClaimSummary").Str("claim_id", id).Msg("error updating claim")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return row.toModel()
}
