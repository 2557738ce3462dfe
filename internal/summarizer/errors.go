// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package summarizer

import "errors"

var (
	ErrUnknownProvider  = errors.New("unknown summarizer provider")
	ErrEmptyCompletion  = errors.New("model returned no text")
	ErrMalformedSummary = errors.New("model reply is not a valid summary")
)
