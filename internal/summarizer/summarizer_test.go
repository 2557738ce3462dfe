// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: Provider
// ─────────────────────────────────────────────

type mockProvider struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
	prompts    []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.completeFn(ctx, prompt)
}

var sampleClaim = models.Claim{
	ID:           "C-1",
	Status:       "OPEN",
	PolicyNumber: "P-9",
	Customer:     "Ana",
	UpdatedAt:    "2026-01-01T00:00:00.000000Z",
}

const validReply = `{
	"overallSummary": "overall",
	"customerFacingSummary": "customer",
	"adjusterFocusedSummary": "adjuster",
	"recommendedNextStep": "next"
}`

// ─────────────────────────────────────────────
// Template
// ─────────────────────────────────────────────

func TestTemplate(t *testing.T) {
	got := Template(sampleClaim, "Missing receipt")

	assert.Equal(t, models.SourceLocalFallback, got.Source)
	assert.Equal(t, "Claim C-1 for policy P-9 is currently OPEN. Notes indicate: Missing receipt", got.OverallSummary)
	assert.Equal(t, "Hi Ana, your claim (C-1) is currently marked as OPEN. "+
		"We are reviewing the latest documentation and will share the next update shortly.", got.CustomerFacingSummary)
	assert.Equal(t, "Claim C-1 (P-9) status=OPEN. Latest notes summary: Missing receipt", got.AdjusterFocusedSummary)
	assert.Equal(t, "Validate outstanding documents and update the claim timeline with the next adjudication checkpoint.", got.RecommendedNextStep)
}

func TestTemplate_Defaults(t *testing.T) {
	got := Template(models.Claim{ID: "C-2"}, "n")

	assert.Equal(t, "Claim C-2 for policy N/A is currently UNKNOWN. Notes indicate: n", got.OverallSummary)
	assert.Contains(t, got.CustomerFacingSummary, "Hi Customer,")
}

// ─────────────────────────────────────────────
// BuildPrompt / ParseSummary
// ─────────────────────────────────────────────

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(sampleClaim, "Missing receipt")

	require.NoError(t, err)
	assert.Equal(t, "You are an insurance claim assistant. Return strict JSON with keys: "+
		"overallSummary, customerFacingSummary, adjusterFocusedSummary, recommendedNextStep. "+
		`Claim: {"id":"C-1","status":"OPEN","policyNumber":"P-9","customer":"Ana","updatedAt":"2026-01-01T00:00:00.000000Z"}. `+
		"Notes: Missing receipt", prompt)
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    models.Summary
		wantErr bool
	}{
		{
			name: "valid",
			text: validReply,
			want: models.Summary{
				OverallSummary:         "overall",
				CustomerFacingSummary:  "customer",
				AdjusterFocusedSummary: "adjuster",
				RecommendedNextStep:    "next",
			},
		},
		{
			name: "extra keys and empty values",
			text: `{"overallSummary":"","customerFacingSummary":"","adjusterFocusedSummary":"","recommendedNextStep":"","confidence":0.9}`,
			want: models.Summary{},
		},
		{name: "missing key", text: `{"overallSummary":"a","customerFacingSummary":"b","adjusterFocusedSummary":"c"}`, wantErr: true},
		{name: "non-string value", text: `{"overallSummary":1,"customerFacingSummary":"b","adjusterFocusedSummary":"c","recommendedNextStep":"d"}`, wantErr: true},
		{name: "prose", text: "Here is the summary you asked for", wantErr: true},
		{name: "array", text: `["a","b"]`, wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSummary(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedSummary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Summarizer
// ─────────────────────────────────────────────

func TestSummarizer_NoProvider(t *testing.T) {
	s := New(nil, config.Summarizer{}, logger.Nop())

	got := s.Summarize(context.Background(), sampleClaim, "Missing receipt")

	assert.Equal(t, Template(sampleClaim, "Missing receipt"), got)
}

func TestSummarizer_ModelReply(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(context.Context, string) (string, error) { return validReply, nil },
	}
	s := New(provider, config.Summarizer{Timeout: time.Second}, logger.Nop())

	got := s.Summarize(context.Background(), sampleClaim, "Missing receipt")

	assert.Equal(t, "mock", got.Source)
	assert.Equal(t, "overall", got.OverallSummary)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "Notes: Missing receipt")
}

func TestSummarizer_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "provider error", err: errors.New("throttled")},
		{name: "malformed reply", reply: "not json"},
		{name: "incomplete reply", reply: `{"overallSummary":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{
				completeFn: func(context.Context, string) (string, error) { return tt.reply, tt.err },
			}
			s := New(provider, config.Summarizer{}, logger.Nop())

			got := s.Summarize(context.Background(), sampleClaim, "Missing receipt")

			assert.Equal(t, models.SourceLocalFallback, got.Source)
			assert.Equal(t, "Claim C-1 for policy P-9 is currently OPEN. Notes indicate: Missing receipt", got.OverallSummary)
		})
	}
}

func TestSummarizer_Timeout(t *testing.T) {
	provider := &mockProvider{
		completeFn: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	s := New(provider, config.Summarizer{Timeout: 10 * time.Millisecond}, logger.Nop())

	got := s.Summarize(context.Background(), sampleClaim, "n")

	assert.Equal(t, models.SourceLocalFallback, got.Source)
}

// ─────────────────────────────────────────────
// NewProvider
// ─────────────────────────────────────────────

func TestNewProvider_NoModel(t *testing.T) {
	p, err := NewProvider(context.Background(), config.Summarizer{Provider: config.ProviderOpenAI})

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), config.Summarizer{Provider: "ollama", ModelID: "llama3"})

	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := NewProvider(context.Background(), config.Summarizer{
		Provider: config.ProviderOpenAI,
		ModelID:  "gpt-4o-mini",
		APIKey:   "key",
	})

	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
}

func TestNewProvider_OpenAIWithoutKey(t *testing.T) {
	_, err := NewProvider(context.Background(), config.Summarizer{Provider: config.ProviderOpenAI, ModelID: "gpt-4o-mini"})

	assert.Error(t, err)
}
