// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/utils"
)

// summarizeClaim handles POST /claims/{id}/summarize.
func (h *Handler) summarizeClaim(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.services.SummaryService.SummarizeClaim(r.Context(), claim)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.summarizeClaim")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
