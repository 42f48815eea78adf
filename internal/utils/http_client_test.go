package utils

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(nil)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(nil)
	client2 := NewHTTPClient(nil)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_UsesTransport(t *testing.T) {
	called := false
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("ok")),
			Request:    r,
		}, nil
	})

	resp, err := NewHTTPClient(rt).R().Get("http://in-process/ping")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !called {
		t.Fatal("expected custom transport to be used")
	}
	if resp.String() != "ok" {
		t.Errorf("expected body 'ok', got '%s'", resp.String())
	}
}
