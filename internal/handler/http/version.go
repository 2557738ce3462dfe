// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/app"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
)

// getServerVersion answers GET /version with the plain-text app version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
