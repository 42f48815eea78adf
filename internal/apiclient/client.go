package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/utils"
	"github.com/google/uuid"
)

// Client is the shared API client. It cannot be implemented outside this
// package; obtain it with [Shared].
type Client interface {
	Executor
	// BaseURL returns the URL every request path is resolved against.
	BaseURL() string

	sealed()
}

type httpClient struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

func newHTTPClient(s settings, log *logger.Logger) *httpClient {
	client := utils.NewHTTPClient(s.transport)
	client.
		SetBaseURL(s.baseURL).
		SetTimeout(s.timeout)

	return &httpClient{client: client, baseURL: s.baseURL, logger: logger.OrNop(log).Component("apiclient")}
}

func (c *httpClient) sealed() {}

func (c *httpClient) BaseURL() string {
	return c.baseURL
}

// Execute implements [Executor]. The request runs on its own goroutine and a
// repeated completion is dropped and logged.
func (c *httpClient) Execute(ctx context.Context, req Request, done Completion) {
	done = utils.OnceCompletion[Response](done, func() {
		c.logger.Error().Str("path", req.Path).Msg("completion invoked more than once")
	})

	go func() {
		resp, err := c.do(ctx, req)
		done(resp, err)
	}()
}

func (c *httpClient) do(ctx context.Context, req Request) (Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r := c.client.R().SetContext(ctx)
	for key, values := range req.Header {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}
	r.SetHeader("X-Request-ID", uuid.NewString())
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(method, req.Path)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", req.Path).Msg("request failed")
		return Response{}, fmt.Errorf("%s %s request: %w", method, req.Path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request executed")

	out := Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header().Clone(),
		Body:       resp.Body(),
	}
	return out, mapHTTPError(resp)
}
