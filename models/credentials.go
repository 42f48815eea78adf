// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the login form content sent to the server's auth endpoint.
type Credentials struct {
	// Login is the unique account name typed on the login screen.
	Login string `json:"login"`

	// Password is sent as typed; the transport is expected to be TLS when a
	// real server address is configured.
	Password string `json:"password"`
}
