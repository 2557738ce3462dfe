// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/app"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/MKhiriev/go-claim-keeper/models"
	"github.com/go-chi/chi/v5"
)

// claimFromRequest returns the claim loaded by claimCtx. A missing claim
// means the route was wired without the middleware.
func claimFromRequest(w http.ResponseWriter, r *http.Request) (models.Claim, bool) {
	claim, ok := utils.GetClaimFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoClaimInContext).Send()
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
	return claim, ok
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), claim.ID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listNotes")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), claim.ID, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	var body models.NoteRequest
	if err := utils.DecodeJSON(r, &body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.addNote").Msg("Invalid JSON was passed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.AddNote(r.Context(), claim.ID, body.Content)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.addNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	var body models.NoteRequest
	if err := utils.DecodeJSON(r, &body); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), claim.ID, chi.URLParam(r, noteIDParam), body.Content)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updateNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	claim, ok := claimFromRequest(w, r)
	if !ok {
		return
	}

	deletion, err := h.services.NoteService.DeleteNote(r.Context(), claim.ID, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.deleteNote")
		return
	}

	utils.WriteJSON(w, deletion, http.StatusOK)
}
