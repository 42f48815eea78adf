package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(nil)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient. A non-nil transport
// replaces resty's default one, which is how requests are routed to an
// in-process handler instead of the network.
func NewHTTPClient(transport http.RoundTripper) *HTTPClient {
	client := resty.New()
	if transport != nil {
		client.SetTransport(transport)
	}
	return &HTTPClient{Client: client}
}
