// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/service"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: ClaimService
// ─────────────────────────────────────────────

type mockClaimSvc struct {
	createFn  func(ctx context.Context, claim models.Claim) (models.Claim, error)
	getFn     func(ctx context.Context, claimID string) (models.Claim, error)
	detailsFn func(ctx context.Context, claimID string) (models.ClaimDetails, error)
}

func (m *mockClaimSvc) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	if m.createFn != nil {
		return m.createFn(ctx, claim)
	}
	return claim, nil
}

func (m *mockClaimSvc) GetClaim(ctx context.Context, claimID string) (models.Claim, error) {
	if m.getFn != nil {
		return m.getFn(ctx, claimID)
	}
	if claimID == "C-1" {
		return testClaim, nil
	}
	return models.Claim{}, store.ErrClaimNotFound
}

func (m *mockClaimSvc) GetClaimDetails(ctx context.Context, claimID string) (models.ClaimDetails, error) {
	if m.detailsFn != nil {
		return m.detailsFn(ctx, claimID)
	}
	claim, err := m.GetClaim(ctx, claimID)
	return models.ClaimDetails{Claim: claim, Notes: []models.Note{}}, err
}

// ─────────────────────────────────────────────
// Mock: NoteService
// ─────────────────────────────────────────────

type mockNoteSvc struct {
	listFn   func(ctx context.Context, claimID string) ([]models.Note, error)
	getFn    func(ctx context.Context, claimID, noteID string) (models.Note, error)
	addFn    func(ctx context.Context, claimID, content string) (models.Note, error)
	updateFn func(ctx context.Context, claimID, noteID, content string) (models.Note, error)
	deleteFn func(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error)
}

func (m *mockNoteSvc) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, claimID)
	}
	return []models.Note{}, nil
}

func (m *mockNoteSvc) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, claimID, noteID)
	}
	return models.Note{ClaimID: claimID, NoteID: noteID}, nil
}

func (m *mockNoteSvc) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	if m.addFn != nil {
		return m.addFn(ctx, claimID, content)
	}
	return models.Note{ClaimID: claimID, NoteID: "N-001", Content: content}, nil
}

func (m *mockNoteSvc) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, claimID, noteID, content)
	}
	return models.Note{ClaimID: claimID, NoteID: noteID, Content: content}, nil
}

func (m *mockNoteSvc) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, claimID, noteID)
	}
	return models.NoteDeletion{Deleted: true, ClaimID: claimID, NoteID: noteID}, nil
}

// ─────────────────────────────────────────────
// Mock: SummaryService
// ─────────────────────────────────────────────

type mockSummarySvc struct {
	summarizeFn func(ctx context.Context, claim models.Claim) (models.SummaryResponse, error)
}

func (m *mockSummarySvc) SummarizeClaim(ctx context.Context, claim models.Claim) (models.SummaryResponse, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, claim)
	}
	return models.SummaryResponse{
		ClaimID:       claim.ID,
		SummaryResult: models.SummaryResult{Source: models.SourceLocalFallback},
	}, nil
}

// ─────────────────────────────────────────────
// Mock: AuthService / AppInfoService
// ─────────────────────────────────────────────

type mockAuthSvc struct {
	enabled bool
	parseFn func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthSvc) Enabled() bool { return m.enabled }

func (m *mockAuthSvc) CreateToken(_ context.Context, operator string) (models.Token, error) {
	return models.Token{Operator: operator, SignedString: "signed"}, nil
}

func (m *mockAuthSvc) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, token)
	}
	if token == "valid-token" {
		return models.Token{Operator: "adjuster-7"}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetAppVersion(_ context.Context) string {
	return "test-version"
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testClaim = models.Claim{
	ID:           "C-1",
	Status:       "OPEN",
	PolicyNumber: "P-9",
	Customer:     "Ana",
	UpdatedAt:    "2026-01-01T00:00:00.000000Z",
}

type testServices struct {
	claims  *mockClaimSvc
	notes   *mockNoteSvc
	summary *mockSummarySvc
	auth    *mockAuthSvc
}

func newTestServices() *testServices {
	return &testServices{
		claims:  &mockClaimSvc{},
		notes:   &mockNoteSvc{},
		summary: &mockSummarySvc{},
		auth:    &mockAuthSvc{},
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		ClaimService:   s.claims,
		NoteService:    s.notes,
		SummaryService: s.summary,
		AuthService:    s.auth,
		AppInfoService: &mockAppInfoSvc{},
	}
}

func newTestHandler(s *testServices, cfg config.Server) *Handler {
	return NewHandler(s.services(), cfg, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Nil(t, h.summarizeLimiter)
}

func TestNewHandler_SummarizeLimiter(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{SummarizeRate: 2}, logger.Nop())

	require.NotNil(t, h.summarizeLimiter)
	assert.Equal(t, 1, h.summarizeLimiter.Burst(), "burst defaults to one")

	h = NewHandler(&service.Services{}, config.Server{SummarizeRate: 2, SummarizeBurst: 5}, logger.Nop())
	assert.Equal(t, 5, h.summarizeLimiter.Burst())
}
