// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoNotesToSummarize is returned when a claim has no notes to build a
	// summary from.
	ErrNoNotesToSummarize = errors.New("No notes found for claim")

	// ErrSummaryWriteBack is returned when the summary was produced but could
	// not be persisted onto the claim.
	ErrSummaryWriteBack = errors.New("failed to persist claim summary")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAuthIsDisabled          = errors.New("token authentication is disabled")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
