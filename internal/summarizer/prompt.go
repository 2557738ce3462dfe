// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-claim-keeper/models"
)

const promptTemplate = "You are an insurance claim assistant. Return strict JSON with keys: " +
	"overallSummary, customerFacingSummary, adjusterFocusedSummary, recommendedNextStep. " +
	"Claim: %s. Notes: %s"

// BuildPrompt embeds the JSON-encoded claim and the notes text in the
// instruction prompt.
func BuildPrompt(claim models.Claim, notesText string) (string, error) {
	encoded, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("encode claim: %w", err)
	}

	return fmt.Sprintf(promptTemplate, encoded, notesText), nil
}

// modelSummary mirrors the expected reply. Pointers tell a missing key apart
// from an empty string.
type modelSummary struct {
	OverallSummary         *string `json:"overallSummary"`
	CustomerFacingSummary  *string `json:"customerFacingSummary"`
	AdjusterFocusedSummary *string `json:"adjusterFocusedSummary"`
	RecommendedNextStep    *string `json:"recommendedNextStep"`
}

// ParseSummary decodes a model reply. The reply must be a single JSON object
// with all four keys holding strings; extra keys are ignored.
func ParseSummary(text string) (models.Summary, error) {
	var reply modelSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &reply); err != nil {
		return models.Summary{}, fmt.Errorf("%w: %w", ErrMalformedSummary, err)
	}

	missing := make([]string, 0, 4)
	if reply.OverallSummary == nil {
		missing = append(missing, "overallSummary")
	}
	if reply.CustomerFacingSummary == nil {
		missing = append(missing, "customerFacingSummary")
	}
	if reply.AdjusterFocusedSummary == nil {
		missing = append(missing, "adjusterFocusedSummary")
	}
	if reply.RecommendedNextStep == nil {
		missing = append(missing, "recommendedNextStep")
	}
	if len(missing) > 0 {
		return models.Summary{}, fmt.Errorf("%w: missing %s", ErrMalformedSummary, strings.Join(missing, ", "))
	}

	return models.Summary{
		OverallSummary:         *reply.OverallSummary,
		CustomerFacingSummary:  *reply.CustomerFacingSummary,
		AdjusterFocusedSummary: *reply.AdjusterFocusedSummary,
		RecommendedNextStep:    *reply.RecommendedNextStep,
	}, nil
}
