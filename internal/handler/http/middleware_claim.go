// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// claimCtx loads the claim named by the {id} path parameter and stores it in
// the request context. Unknown claims are answered with 404 before the
// wrapped handler runs.
func (h *Handler) claimCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claimID := chi.URLParam(r, claimIDParam)

		claim, err := h.services.ClaimService.GetClaim(r.Context(), claimID)
		if err != nil {
			writeServiceError(w, r, err, "*Handler.claimCtx")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaim(r.Context(), claim)))
	})
}
