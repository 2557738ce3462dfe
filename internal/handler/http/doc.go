// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the claims service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, optional bearer
// authentication, response compression and throttling of the summarize
// endpoint are handled here before requests are delegated to the service
// layer. Every error response is a JSON object of the form
// {"detail": "..."}.
package http
