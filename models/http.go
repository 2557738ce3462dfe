// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NoteRequest is the body accepted when adding or updating a note.
type NoteRequest struct {
	Content string `json:"content"`
}
