// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Summary source tags.
const (
	SourceBedrock       = "bedrock"
	SourceOpenAI        = "openai"
	SourceLocalFallback = "local-fallback"
)

// Summary is the four-part digest of a claim and its notes. It is persisted
// onto the claim after every successful summarization.
type Summary struct {
	OverallSummary         string `json:"overallSummary"`
	CustomerFacingSummary  string `json:"customerFacingSummary"`
	AdjusterFocusedSummary string `json:"adjusterFocusedSummary"`
	RecommendedNextStep    string `json:"recommendedNextStep"`
}

// SummaryResult is a Summary together with the tag of whoever produced it.
type SummaryResult struct {
	Summary
	Source string `json:"source"`
}

// SummaryResponse is the body returned by the summarize endpoint.
type SummaryResponse struct {
	ClaimID string `json:"claimId"`
	SummaryResult
}
