// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

const claimsDocumentName = "claims.json"

// documentClaimRepository keeps all claims in one JSON document.
type documentClaimRepository struct {
	doc    *document[models.Claim]
	logger *logger.Logger
}

// NewFileClaimRepository returns a [ClaimRepository] backed by path.
func NewFileClaimRepository(path string, log *logger.Logger) ClaimRepository {
	log.Debug().Str("path", path).Msg("creating file claim repository")
	return newDocumentClaimRepository(newFileBlob(path), log)
}

func newDocumentClaimRepository(b blob, log *logger.Logger) *documentClaimRepository {
	return &documentClaimRepository{
		doc:    newDocument[models.Claim](b),
		logger: log,
	}
}

func (r *documentClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	err := r.doc.update(ctx, func(claims []models.Claim) ([]models.Claim, error) {
		if indexOfClaim(claims, claim.ID) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrClaimAlreadyExists, claim.ID)
		}
		return append(claims, claim), nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentClaimRepository.CreateClaim").
			Str("claim_id", claim.ID).Msg("error creating claim")
		return models.Claim{}, err
	}

	return claim, nil
}

func (r *documentClaimRepository) GetClaim(ctx context.Context, id string) (models.Claim, error) {
	claims, err := r.doc.read(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentClaimRepository.GetClaim").
			Str("claim_id", id).Msg("error reading claims")
		return models.Claim{}, err
	}

	i := indexOfClaim(claims, id)
	if i < 0 {
		return models.Claim{}, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
	}

	return claims[i], nil
}

func (r *documentClaimRepository) UpdateClaimSummary(ctx context.Context, id string, summary models.Summary, updatedAt string) (models.Claim, error) {
	var updated models.Claim
	err := r.doc.update(ctx, func(claims []models.Claim) ([]models.Claim, error) {
		i := indexOfClaim(claims, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrClaimNotFound, id)
		}

		claims[i].Summary = &summary
		claims[i].UpdatedAt = updatedAt
		updated = claims[i]
		return claims, nil
	})
	if err != nil {
		return models.Claim{}, err
	}

	return updated, nil
}

func indexOfClaim(claims []models.Claim, id string) int {
	for i := range claims {
		if claims[i].ID == id {
			return i
		}
	}
	return -1
}
