package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/komsit37/sportstrader/pkg/st/payload"
)

// DefaultFiltersURL is used when no filters endpoint is configured.
const DefaultFiltersURL = "http://127.0.0.1:8000/api/filters"

// StatusError reports a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, string(e.Body))
}

// HTTPSource fetches payloads with single unauthenticated GET requests.
type HTTPSource struct {
	marketsURL string
	filtersURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.httpClient = hc
	}
}

// WithTimeout sets a client timeout. Zero keeps the platform default.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) HTTPOption {
	return func(s *HTTPSource) {
		s.logger = logger
	}
}

// NewHTTPSource creates a source for the given endpoints.
// An empty marketsURL disables the markets fetch; an empty filtersURL uses DefaultFiltersURL.
func NewHTTPSource(marketsURL, filtersURL string, opts ...HTTPOption) *HTTPSource {
	if filtersURL == "" {
		filtersURL = DefaultFiltersURL
	}
	s := &HTTPSource{
		marketsURL: marketsURL,
		filtersURL: filtersURL,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Markets fetches and decodes the markets payload.
func (s *HTTPSource) Markets(ctx context.Context) (payload.Payload, error) {
	if s.marketsURL == "" {
		s.logger.Debug("markets endpoint not configured, skipping fetch")
		return payload.Empty{}, nil
	}
	body, err := s.get(ctx, s.marketsURL)
	if err != nil {
		return nil, err
	}
	p, err := payload.DecodeMarkets(body)
	if err != nil {
		return nil, fmt.Errorf("decode markets from %s: %w", s.marketsURL, err)
	}
	return p, nil
}

// Filters fetches and decodes the sport filter configuration.
func (s *HTTPSource) Filters(ctx context.Context) (payload.Payload, error) {
	body, err := s.get(ctx, s.filtersURL)
	if err != nil {
		return nil, err
	}
	p, err := payload.DecodeFilterConfig(body)
	if err != nil {
		return nil, fmt.Errorf("decode filters from %s: %w", s.filtersURL, err)
	}
	return p, nil
}

func (s *HTTPSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
