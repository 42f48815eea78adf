package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/stubapi"
)

// stubBaseURL is the base URL used while requests are served in-process.
const stubBaseURL = "http://stub.local"

const defaultRequestTimeout = 15 * time.Second

var (
	sharedOnce sync.Once
	shared     *httpClient
)

type settings struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

// Shared returns the process-wide client, building it with default settings
// (stub backend, 15s timeout) on first use unless [Init] ran before.
// Concurrent first calls observe the same instance.
func Shared() Client {
	sharedOnce.Do(func() {
		s, err := newSettings(config.NewClientConfig(config.Defaults()), logger.Nop())
		if err != nil {
			panic(fmt.Sprintf("apiclient: default settings: %v", err))
		}
		shared = newHTTPClient(s, nil)
	})
	return shared
}

// Init builds the shared client from cfg. It must run before the first call
// to [Shared]; afterwards it returns [ErrAlreadyInitialized] and the existing
// instance is kept. An invalid address yields a wrapped [ErrInvalidAddress]
// and nothing is built. A nil cfg selects the defaults.
func Init(cfg *config.ClientConfig, log *logger.Logger) error {
	if cfg == nil {
		cfg = config.NewClientConfig(config.Defaults())
	}

	s, err := newSettings(cfg, log)
	if err != nil {
		return err
	}

	installed := false
	sharedOnce.Do(func() {
		shared = newHTTPClient(s, log)
		installed = true
	})
	if !installed {
		return ErrAlreadyInitialized
	}

	logger.OrNop(log).Info().
		Str("base_url", s.baseURL).
		Bool("stub", cfg.Adapter.UsesStub()).
		Msg("api client initialized")
	return nil
}

func newSettings(cfg *config.ClientConfig, log *logger.Logger) (settings, error) {
	s := settings{timeout: cfg.Adapter.RequestTimeout}
	if s.timeout <= 0 {
		s.timeout = defaultRequestTimeout
	}

	if cfg.Adapter.UsesStub() {
		handler, err := stubapi.NewHandler(cfg.Stub, log)
		if err != nil {
			return settings{}, fmt.Errorf("stub backend: %w", err)
		}
		s.baseURL = stubBaseURL
		s.transport = stubapi.Transport(handler.Init())
		return s, nil
	}

	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	s.baseURL = baseURL
	return s, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
