package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	resp Response
	err  error
}

// execute runs one request and waits for its completion.
func execute(t *testing.T, e Executor, ctx context.Context, req Request) (Response, error) {
	t.Helper()
	ch := make(chan result, 1)
	e.Execute(ctx, req, func(resp Response, err error) {
		ch <- result{resp: resp, err: err}
	})

	select {
	case r := <-ch:
		return r.resp, r.err
	case <-time.After(5 * time.Second):
		t.Fatal("completion was not invoked")
		return Response{}, nil
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httpClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newHTTPClient(settings{baseURL: srv.URL, timeout: 2 * time.Second}, nil), srv
}

func TestExecute_SendsRequest(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"k":"v"}`, string(body))

		w.Header().Set("X-Answer", "42")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	resp, err := execute(t, c, context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/api/echo",
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   []byte(`{"k":"v"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "42", resp.Header.Get("X-Answer"))
	assert.Equal(t, "created", string(resp.Body))
}

func TestExecute_DefaultsToGet(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	_, err := execute(t, c, context.Background(), Request{Path: "/"})

	assert.NoError(t, err)
}

func TestExecute_MapsStatusToError(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "details", tt.status)
			})

			resp, err := execute(t, c, context.Background(), Request{Path: "/"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "details")
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestExecute_UnmappedStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := execute(t, c, context.Background(), Request{Path: "/"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestExecute_TransportError(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := execute(t, c, context.Background(), Request{Path: "/api/feed"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInternalServerError))
	assert.Contains(t, err.Error(), "GET /api/feed request")
}

func TestExecute_CancelledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := execute(t, c, ctx, Request{Path: "/"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_CompletesOnce(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var calls atomic.Int32
	c.Execute(context.Background(), Request{Path: "/"}, func(Response, error) {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestExecute_NilCompletion(t *testing.T) {
	handled := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(handled)
	})

	assert.NotPanics(t, func() { c.Execute(context.Background(), Request{Path: "/"}, nil) })

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("request was not sent")
	}
}

func TestExecutorFunc(t *testing.T) {
	var got Request
	f := ExecutorFunc(func(ctx context.Context, req Request, done Completion) {
		got = req
		done(Response{StatusCode: http.StatusOK}, nil)
	})

	resp, err := execute(t, f, context.Background(), Request{Path: "/x"})

	require.NoError(t, err)
	assert.Equal(t, "/x", got.Path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
