package stubapi

import (
	"net/http"
	"net/http/httptest"
)

type handlerTransport struct {
	handler http.Handler
}

// Transport returns a RoundTripper that serves every request with h inside
// the current process.
func Transport(h http.Handler) http.RoundTripper {
	return &handlerTransport{handler: h}
}

func (t *handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	// handlers expect a non-nil body
	if req.Body == nil {
		req = req.Clone(req.Context())
		req.Body = http.NoBody
	}

	rec := httptest.NewRecorder()
	t.handler.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
