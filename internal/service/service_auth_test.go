// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(signKey string) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  signKey,
		TokenIssuer:   "go-claim-keeper",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_Enabled(t *testing.T) {
	assert.True(t, newTestAuthService("secret").Enabled())
	assert.False(t, newTestAuthService("").Enabled())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService("secret")

	token, err := svc.CreateToken(context.Background(), "adjuster-7")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "adjuster-7", parsed.Operator)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	token, err := newTestAuthService("secret").CreateToken(context.Background(), "adjuster-7")
	require.NoError(t, err)

	_, err = newTestAuthService("other").ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	_, err := newTestAuthService("secret").ParseToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Disabled(t *testing.T) {
	svc := newTestAuthService("")

	_, err := svc.CreateToken(context.Background(), "adjuster-7")
	assert.ErrorIs(t, err, ErrAuthIsDisabled)

	_, err = svc.ParseToken(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrAuthIsDisabled)
}
