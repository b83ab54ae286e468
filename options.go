package heidelpay

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

type config struct {
	backend        BackendService
	httpClient     *http.Client
	baseURL        string
	logger         *slog.Logger
	acceptLanguage string
}

func defaultConfig() *config {
	return &config{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option customizes the client.
type Option func(*config)

// WithBackendService replaces the HTTP backend, e.g. with a stub in tests.
// The other transport options have no effect when it is set.
func WithBackendService(backend BackendService) Option {
	if backend == nil {
		panic("heidelpay: backend service must not be nil")
	}
	return func(cfg *config) {
		cfg.backend = backend
	}
}

// WithHTTPClient sets the client used by the HTTP backend.
func WithHTTPClient(client *http.Client) Option {
	if client == nil {
		panic("heidelpay: http client must not be nil")
	}
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithBaseURL overrides the API endpoint, e.g. for a proxy.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
			cfg.baseURL = baseURL
		}
	}
}

// WithLogger sets the logger for request diagnostics. Output is discarded by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithAcceptLanguage sets the default locale of customer messages in server
// errors. [ContextWithRequestMetadata] overrides it per call.
func WithAcceptLanguage(language string) Option {
	return func(cfg *config) {
		cfg.acceptLanguage = strings.TrimSpace(language)
	}
}
