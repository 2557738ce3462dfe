// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
)

// Provider sends a single prompt to a hosted model and returns its reply.
type Provider interface {
	// Name is the source tag reported with summaries from this provider.
	Name() string

	// Complete returns the concatenated text of the model reply.
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the provider selected by cfg.Provider. It returns a nil
// Provider and no error when no model id is configured.
func NewProvider(ctx context.Context, cfg config.Summarizer) (Provider, error) {
	if cfg.ModelID == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderBedrock, "":
		return NewBedrockProvider(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s, %s)", ErrUnknownProvider, cfg.Provider, config.ProviderBedrock, config.ProviderOpenAI)
	}
}
