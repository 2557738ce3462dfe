// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of server-generated claim timestamps:
// ISO-8601 in UTC with microsecond precision and a literal "Z" suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Claim is a single insurance claim tracked by the API.
//
// A claim is created explicitly, is never deleted and is only mutated by the
// summarization write-back, which sets Summary and refreshes UpdatedAt.
type Claim struct {
	// ID is the caller-supplied claim identifier. Unique across the store.
	ID string `json:"id"`

	// Status is a free-form status label (e.g. "OPEN", "IN_REVIEW").
	Status string `json:"status"`

	// PolicyNumber identifies the policy the claim is filed against.
	PolicyNumber string `json:"policyNumber"`

	// Customer is the display name of the policyholder.
	Customer string `json:"customer"`

	// UpdatedAt is the last modification time as an ISO-8601 string.
	UpdatedAt string `json:"updatedAt"`

	// Summary is the last persisted summary, if any.
	Summary *Summary `json:"summary,omitempty"`
}

// Normalize returns a copy of c with every text field trimmed. When UpdatedAt
// is empty after trimming it is set to now, formatted with [TimestampLayout].
func (c Claim) Normalize(now time.Time) Claim {
	normalized := Claim{
		ID:           strings.TrimSpace(c.ID),
		Status:       strings.TrimSpace(c.Status),
		PolicyNumber: strings.TrimSpace(c.PolicyNumber),
		Customer:     strings.TrimSpace(c.Customer),
		UpdatedAt:    strings.TrimSpace(c.UpdatedAt),
		Summary:      c.Summary,
	}
	if normalized.UpdatedAt == "" {
		normalized.UpdatedAt = FormatTimestamp(now)
	}

	return normalized
}

// FormatTimestamp renders t in UTC using [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ClaimDetails is the response of the claim lookup endpoint: the claim
// itself together with all of its notes.
type ClaimDetails struct {
	Claim
	Notes []Note `json:"notes"`
}
