// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
)

// Summarizer asks a Provider for a summary and falls back to [Template].
type Summarizer struct {
	provider Provider
	timeout  time.Duration
	logger   *logger.Logger
}

// New returns a Summarizer. A nil provider makes every summary a template.
func New(provider Provider, cfg config.Summarizer, logger *logger.Logger) *Summarizer {
	return &Summarizer{
		provider: provider,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
}

// NewFromConfig builds the provider selected by cfg and wraps it.
func NewFromConfig(ctx context.Context, cfg config.Summarizer, logger *logger.Logger) (*Summarizer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if provider == nil {
		logger.Info().Msg("no summarizer model configured, using templated summaries")
	} else {
		logger.Info().Str("provider", provider.Name()).Str("model", cfg.ModelID).Msg("summarizer configured")
	}

	return New(provider, cfg, logger), nil
}

// Summarize never fails. Provider and parse errors are logged at warn level.
func (s *Summarizer) Summarize(ctx context.Context, claim models.Claim, notesText string) models.SummaryResult {
	if s.provider == nil {
		return Template(claim, notesText)
	}

	log := logger.FromContext(ctx).With().
		Str("func", "*Summarizer.Summarize").
		Str("claim_id", claim.ID).
		Str("provider", s.provider.Name()).
		Logger()

	prompt, err := BuildPrompt(claim, notesText)
	if err != nil {
		log.Warn().Err(err).Msg("error building prompt, using template")
		return Template(claim, notesText)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("model call failed, using template")
		return Template(claim, notesText)
	}

	summary, err := ParseSummary(text)
	if err != nil {
		log.Warn().Err(err).Msg("model reply rejected, using template")
		return Template(claim, notesText)
	}

	return models.SummaryResult{Summary: summary, Source: s.provider.Name()}
}
