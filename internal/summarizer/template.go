// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import (
	"fmt"

	"github.com/MKhiriev/go-claim-keeper/models"
)

// Placeholders for claim fields that are empty.
const (
	defaultStatus   = "UNKNOWN"
	defaultCustomer = "Customer"
	defaultPolicy   = "N/A"
)

const recommendedNextStep = "Validate outstanding documents and update the claim timeline with the next adjudication checkpoint."

// Template builds the summary used when no model is configured or the model
// call fails.
func Template(claim models.Claim, notesText string) models.SummaryResult {
	status := orDefault(claim.Status, defaultStatus)
	customer := orDefault(claim.Customer, defaultCustomer)
	policy := orDefault(claim.PolicyNumber, defaultPolicy)

	return models.SummaryResult{
		Summary: models.Summary{
			OverallSummary: fmt.Sprintf("Claim %s for policy %s is currently %s. Notes indicate: %s",
				claim.ID, policy, status, notesText),
			CustomerFacingSummary: fmt.Sprintf("Hi %s, your claim (%s) is currently marked as %s. "+
				"We are reviewing the latest documentation and will share the next update shortly.",
				customer, claim.ID, status),
			AdjusterFocusedSummary: fmt.Sprintf("Claim %s (%s) status=%s. Latest notes summary: %s",
				claim.ID, policy, status, notesText),
			RecommendedNextStep: recommendedNextStep,
		},
		Source: models.SourceLocalFallback,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
