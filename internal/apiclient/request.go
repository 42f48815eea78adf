package apiclient

import (
	"context"
	"net/http"
)

// Request is a single call routed by the client. Only Method and Path are
// interpreted; Header and Body are passed through untouched.
type Request struct {
	// Method defaults to GET when empty.
	Method string
	// Path is resolved against the client's base URL.
	Path   string
	Header http.Header
	Body   []byte
}

// Response is the raw outcome of a request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Completion receives the outcome of one Execute call.
type Completion func(Response, error)

// ExecutorFunc adapts a plain function to [Executor].
type ExecutorFunc func(ctx context.Context, req Request, done Completion)

// Execute calls f(ctx, req, done).
func (f ExecutorFunc) Execute(ctx context.Context, req Request, done Completion) {
	f(ctx, req, done)
}
