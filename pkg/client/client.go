// Package client provides the Pokémon TCG API client: request construction,
// API key authentication, envelope decoding and auto-pagination.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/ptcg-client/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

// DefaultBaseURL is the public v2 API.
const DefaultBaseURL = "https://api.pokemontcg.io/v2"

// APIKeyHeader carries the optional API key on every request.
const APIKeyHeader = "X-Api-Key"

// Prometheus metrics for API requests.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ptcg_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ptcg_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ptcg_errors_total",
		Help: "Total failed API calls by error kind",
	}, []string{"kind"})
)

// Client is the Pokémon TCG API client. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the API, without trailing slash.
	BaseURL string

	// APIKey is sent as X-Api-Key when non-empty.
	APIKey string

	// UserAgent header sent with every request.
	UserAgent string

	// Timeout bounds each HTTP request, including reading the body.
	Timeout time.Duration
}

// DefaultConfig returns a configuration for the public API without an API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "ptcg-client/0.1.0",
		Timeout:   30 * time.Second,
	}
}

// New creates a new client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}

	if cfg.APIKey != "" && !httpguts.ValidHeaderFieldValue(cfg.APIKey) {
		return nil, fmt.Errorf("invalid api key: not a valid header value")
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0 (got %s)", cfg.Timeout)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
		logger:  logging.NewLogger("ptcg-client"),
	}, nil
}

// Do sends req with the configured headers and records request metrics.
// The caller must close the response body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	endpoint := endpointLabel(strings.TrimPrefix(req.URL.Path, c.basePath()))

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	if c.config.APIKey != "" {
		req.Header.Set(APIKeyHeader, c.config.APIKey)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Str("query", req.URL.RawQuery).
		Msg("Executing API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, err
	}

	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status_code", resp.StatusCode).
		Dur("duration", time.Since(startTime)).
		Msg("API request completed")

	return resp, nil
}

// Get performs a GET request for path (relative to the base URL) with the
// given query parameters. Empty params send no query string.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.Do(req)
}

// BaseURL returns the configured base URL without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetLogger replaces the client logger.
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

func (c *Client) basePath() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// endpointLabel keeps metric cardinality bounded: "/cards/base1-4" becomes
// "/cards/:id".
func endpointLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "/"
	}
	if len(parts) > 1 {
		return "/" + parts[0] + "/:id"
	}
	return "/" + parts[0]
}
