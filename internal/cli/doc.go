// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the claimctl command-line client.
//
// Every command talks to a running claims API through [adapter.ClaimsAPI]
// and renders the response either as styled text (lipgloss) or, with
// --json, as indented JSON. The token command mints bearer tokens locally
// from the shared signing key and never contacts the server.
package cli
