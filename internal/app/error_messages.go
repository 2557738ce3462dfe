// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds fixed response details shared by the HTTP layer.
package app

// Details returned in the {"detail": ...} body for failures that are not
// described by a domain error.
const (
	// MsgInternalServerError replaces the cause of every 5xx response.
	MsgInternalServerError = "Internal server error"

	MsgNotFound = "Not Found"

	MsgMethodNotAllowed = "Method Not Allowed"

	MsgInvalidGzipBody = "invalid gzip body"
)
