// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the required fields of claims and notes before
// they reach storage.
//
// A Validator is injected into the validation wrappers of the service layer,
// which call Validate with the value and, optionally, the names of the fields
// to check. Every failure is one of the sentinel errors of this package, so
// the HTTP layer can map it to 400 Bad Request.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
