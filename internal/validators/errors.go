// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyClaimID     = errors.New("claim id is required")
	ErrEmptyNoteID      = errors.New("note id is required")
	ErrEmptyNoteContent = errors.New("note content is required")
)
