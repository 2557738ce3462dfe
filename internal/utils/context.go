// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the server and
// the CLI client: typed context keys, JSON response writing, the resty HTTP
// client, bearer token minting and parsing, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-claim-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// OperatorCtxKey stores the "sub" claim of an authenticated request.
	OperatorCtxKey = contextKey("operator")

	// ClaimCtxKey stores the claim loaded for /claims/{id} sub-routes.
	ClaimCtxKey = contextKey("claim")
)

// GetOperatorFromContext returns the authenticated operator, if any.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok
}

// WithClaim returns a copy of ctx carrying claim.
func WithClaim(ctx context.Context, claim models.Claim) context.Context {
	return context.WithValue(ctx, ClaimCtxKey, claim)
}

// GetClaimFromContext returns the claim stored by [WithClaim].
//
// ok is false when the value is missing or has an unexpected type.
func GetClaimFromContext(ctx context.Context) (models.Claim, bool) {
	claim, ok := ctx.Value(ClaimCtxKey).(models.Claim)
	return claim, ok
}
