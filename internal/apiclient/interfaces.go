// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/executor_mock.go -package=mock

// Executor dispatches one request and reports the outcome through done.
//
// Execute returns immediately; done is invoked at most once, from another
// goroutine, with either the response or an error. A cancelled ctx ends the
// request with the context error.
type Executor interface {
	Execute(ctx context.Context, req Request, done Completion)
}
