// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/go-chi/chi/v5"
)

// createClaim handles POST /claims.
func (h *Handler) createClaim(w http.ResponseWriter, r *http.Request) {
	var claim models.Claim
	if err := utils.DecodeJSON(r, &claim); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createClaim").Msg("Invalid JSON was passed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.ClaimService.CreateClaim(r.Context(), claim)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createClaim")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getClaim handles GET /claims/{id} and returns the claim with its notes.
func (h *Handler) getClaim(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.ClaimService.GetClaimDetails(r.Context(), chi.URLParam(r, claimIDParam))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getClaim")
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}
