// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
)

// limitSummarize rejects summarize calls above the configured rate with 429.
// Every summarize may reach a hosted model, so it is throttled server-wide.
func (h *Handler) limitSummarize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.summarizeLimiter != nil && !h.summarizeLimiter.Allow() {
			logger.FromRequest(r).Warn().Str("func", "*Handler.limitSummarize").Msg("summarize rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			utils.WriteError(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
