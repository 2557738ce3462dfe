// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-claim-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetOperatorFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "adjuster-7")

	operator, ok := GetOperatorFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if operator != "adjuster-7" {
		t.Errorf("expected 'adjuster-7', got '%s'", operator)
	}
}

func TestGetOperatorFromContext_Missing(t *testing.T) {
	if _, ok := GetOperatorFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetOperatorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, 42)

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestWithClaim_RoundTrip(t *testing.T) {
	claim := models.Claim{ID: "C-1", Status: "OPEN"}

	got, ok := GetClaimFromContext(WithClaim(context.Background(), claim))
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.ID != "C-1" || got.Status != "OPEN" {
		t.Errorf("unexpected claim %+v", got)
	}
}

func TestGetClaimFromContext_Missing(t *testing.T) {
	if _, ok := GetClaimFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
