// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-claim-keeper/internal/config"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	claimPath = "/claims/{claimId}"
	notesPath = claimPath + "/notes"
	notePath  = notesPath + "/{noteId}"
)

type httpClaimsAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClaimsAPI constructs an HTTP/REST implementation of [ClaimsAPI].
// It normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying HTTP client with the resolved base URL and request timeout.
// cfg.Token, when set, is used as the initial bearer token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPClaimsAPI(cfg config.ClientAdapter, logger *logger.Logger) (ClaimsAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpClaimsAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClaimsAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClaimsAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClaimsAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpClaimsAPI) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(claim).
		Post("/claims")
	if err != nil {
		return models.Claim{}, fmt.Errorf("create claim request: %w", err)
	}

	var created models.Claim
	if err = decodeResponse(resp, &created); err != nil {
		return models.Claim{}, fmt.Errorf("create claim: %w", err)
	}

	return created, nil
}

func (h *httpClaimsAPI) GetClaim(ctx context.Context, claimID string) (models.ClaimDetails, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("claimId", claimID).
		Get(claimPath)
	if err != nil {
		return models.ClaimDetails{}, fmt.Errorf("get claim request: %w", err)
	}

	var details models.ClaimDetails
	if err = decodeResponse(resp, &details); err != nil {
		return models.ClaimDetails{}, fmt.Errorf("get claim: %w", err)
	}

	return details, nil
}

func (h *httpClaimsAPI) ListNotes(ctx context.Context, claimID string) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("claimId", claimID).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}

	notes := make([]models.Note, 0)
	if err = decodeResponse(resp, &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (h *httpClaimsAPI) GetNote(ctx context.Context, claimID, noteID string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"claimId": claimID, "noteId": noteID}).
		Get(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}

	var note models.Note
	if err = decodeResponse(resp, &note); err != nil {
		return models.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (h *httpClaimsAPI) AddNote(ctx context.Context, claimID, content string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("claimId", claimID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NoteRequest{Content: content}).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("add note request: %w", err)
	}

	var note models.Note
	if err = decodeResponse(resp, &note); err != nil {
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}

	return note, nil
}

func (h *httpClaimsAPI) UpdateNote(ctx context.Context, claimID, noteID, content string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"claimId": claimID, "noteId": noteID}).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NoteRequest{Content: content}).
		Put(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}

	var note models.Note
	if err = decodeResponse(resp, &note); err != nil {
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	return note, nil
}

func (h *httpClaimsAPI) DeleteNote(ctx context.Context, claimID, noteID string) (models.NoteDeletion, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"claimId": claimID, "noteId": noteID}).
		Delete(notePath)
	if err != nil {
		return models.NoteDeletion{}, fmt.Errorf("delete note request: %w", err)
	}

	var deletion models.NoteDeletion
	if err = decodeResponse(resp, &deletion); err != nil {
		return models.NoteDeletion{}, fmt.Errorf("delete note: %w", err)
	}

	return deletion, nil
}

func (h *httpClaimsAPI) Summarize(ctx context.Context, claimID string) (models.SummaryResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("claimId", claimID).
		Post(claimPath + "/summarize")
	if err != nil {
		return models.SummaryResponse{}, fmt.Errorf("summarize request: %w", err)
	}

	var summary models.SummaryResponse
	if err = decodeResponse(resp, &summary); err != nil {
		return models.SummaryResponse{}, fmt.Errorf("summarize: %w", err)
	}

	h.logger.Debug().
		Str("claim_id", summary.ClaimID).
		Str("source", summary.Source).
		Msg("claim summarized")

	return summary, nil
}

func (h *httpClaimsAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeResponse(resp *resty.Response, dst any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
