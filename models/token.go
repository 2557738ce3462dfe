// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token used to call the claims API when
// authentication is enabled.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for access to the standard claim set. The "sub" claim names the operator
// (adjuster, service account) the token was minted for.
type Token struct {
	// Token is the underlying JWT. Only the compact form leaves the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Operator is a cached copy of the "sub" claim.
	Operator string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
