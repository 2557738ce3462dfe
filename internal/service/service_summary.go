// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/models"
)

type summaryService struct {
	claims     store.ClaimRepository
	notes      store.NoteRepository
	summarizer Summarizer

	now    func() time.Time
	logger *logger.Logger
}

func NewSummaryService(claims store.ClaimRepository, notes store.NoteRepository, summarizer Summarizer, logger *logger.Logger) SummaryService {
	return &summaryService{
		claims:     claims,
		notes:      notes,
		summarizer: summarizer,
		now:        time.Now,
		logger:     logger,
	}
}

// SummarizeClaim summarizes claim from its notes in store order and writes
// the summary back onto the claim with a fresh timestamp.
//
// Returns ErrNoNotesToSummarize when the claim has no notes and a wrapped
// ErrSummaryWriteBack when persisting the summary fails. Model failures never
// surface here: the summarizer degrades to a template instead.
func (s *summaryService) SummarizeClaim(ctx context.Context, claim models.Claim) (models.SummaryResponse, error) {
	log := logger.FromContext(ctx).With().Str("claim_id", claim.ID).Logger()

	notes, err := s.notes.ListNotes(ctx, claim.ID)
	if err != nil {
		log.Err(err).Str("func", "*summaryService.SummarizeClaim").Msg("error listing notes")
		return models.SummaryResponse{}, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return models.SummaryResponse{}, fmt.Errorf("%w: %s", ErrNoNotesToSummarize, claim.ID)
	}

	result := s.summarizer.Summarize(ctx, claim, models.NotesText(notes))

	if _, err = s.claims.UpdateClaimSummary(ctx, claim.ID, result.Summary, models.FormatTimestamp(s.now())); err != nil {
		log.Err(err).Str("func", "*summaryService.SummarizeClaim").Msg("error persisting summary")
		return models.SummaryResponse{}, fmt.Errorf("%w: %v", ErrSummaryWriteBack, err)
	}

	log.Info().Str("source", result.Source).Int("notes", len(notes)).Msg("claim summarized")
	return models.SummaryResponse{ClaimID: claim.ID, SummaryResult: result}, nil
}
