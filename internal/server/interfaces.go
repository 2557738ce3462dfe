// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is a long-running network server.
type Server interface {
	// RunServer blocks until a termination signal is received and the server
	// has shut down.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the configured shutdown timeout.
	Shutdown()
}
