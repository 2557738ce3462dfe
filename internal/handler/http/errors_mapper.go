// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-claim-keeper/internal/app"
	"github.com/MKhiriev/go-claim-keeper/internal/logger"
	"github.com/MKhiriev/go-claim-keeper/internal/service"
	"github.com/MKhiriev/go-claim-keeper/internal/store"
	"github.com/MKhiriev/go-claim-keeper/internal/utils"
	"github.com/MKhiriev/go-claim-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidJSONBody: http.StatusBadRequest,

	validators.ErrEmptyClaimID:     http.StatusBadRequest,
	validators.ErrEmptyNoteID:      http.StatusBadRequest,
	validators.ErrEmptyNoteContent: http.StatusBadRequest,

	service.ErrNoNotesToSummarize:      http.StatusNotFound,
	service.ErrSummaryWriteBack:        http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAuthIsDisabled:          http.StatusNotFound,

	store.ErrClaimAlreadyExists: http.StatusConflict,
	store.ErrNoteAlreadyExists:  http.StatusConflict,
	store.ErrClaimNotFound:      http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrReadingDocument:      http.StatusInternalServerError,
	store.ErrDecodingDocument:     http.StatusInternalServerError,
	store.ErrEncodingDocument:     http.StatusInternalServerError,
	store.ErrWritingDocument:      http.StatusInternalServerError,
	store.ErrDynamoRequest:        http.StatusInternalServerError,
	store.ErrObjectStoreRequest:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status code. Client errors carry the error
// text; server errors are logged and answered with a generic detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
