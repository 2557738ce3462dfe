// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	claimIDParam = "id"
	noteIDParam  = "noteId"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/claims", h.createClaim)

		r.Route("/claims/{id}", func(r chi.Router) {
			r.Get("/", h.getClaim)

			// sub-resources need the parent claim to exist
			r.Group(func(r chi.Router) {
				r.Use(h.claimCtx)

				r.Get("/notes", h.listNotes)
				r.Post("/notes", h.addNote)
				r.Get("/notes/{noteId}", h.getNote)
				r.Put("/notes/{noteId}", h.updateNote)
				r.Delete("/notes/{noteId}", h.deleteNote)

				r.With(h.limitSummarize).Post("/summarize", h.summarizeClaim)
			})
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
