// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiclient owns the single networked API client of the process.
//
// The client exposes exactly one primitive, [Executor.Execute]. Feature
// packages (login, feed) build their operations on top of it and never see
// the concrete type. There is no exported constructor: the instance is
// obtained through [Shared], optionally preceded by one call to [Init] with
// explicit settings.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so callers
// can match them with [errors.Is] (e.g. [ErrUnauthorized] for 401).
//
// When no server address is configured, requests are served by the
// in-process stub backend from package stubapi and no network I/O happens.
package apiclient
