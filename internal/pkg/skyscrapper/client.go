package skyscrapper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ProviderName = "SkyScrapper"

	searchAirportPath = "/api/v1/flights/searchAirport"
	searchFlightsPath = "/api/v2/flights/searchFlightsComplete"

	// bodies above this size are cut off and decode as malformed
	maxResponseBytes = 8 << 20

	apiKeyHeader  = "X-RapidAPI-Key"
	apiHostHeader = "X-RapidAPI-Host"
)

// config for the sky scrapper provider
type ClientConfig struct {
	BaseURL string
	APIKey  string
	APIHost string
	Locale  string
	Timeout time.Duration
	Limiter Limiter
}

// Client talks to the two sky scrapper endpoints. It never retries.
type Client struct {
	Name       string
	BaseURL    string
	APIKey     string
	APIHost    string
	Locale     string
	Limiter    Limiter
	HTTPClient *http.Client

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64
}

func NewClient(config ClientConfig) *Client {
	return &Client{
		Name:    ProviderName,
		BaseURL: strings.TrimRight(config.BaseURL, "/"),
		APIKey:  config.APIKey,
		APIHost: config.APIHost,
		Locale:  config.Locale,
		Limiter: config.Limiter,
		HTTPClient: &http.Client{
			Timeout: config.Timeout,
		},
		MaxBodyBytes: maxResponseBytes,
	}
}

// get issues one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.Limiter != nil {
		allowed, err := c.Limiter.Allow(ctx, fmt.Sprintf("limit:%s:%s", c.Name, path))
		if err != nil {
			return nil, err
		}

		if !allowed {
			return nil, ErrProviderRateLimitExceeded
		}
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.APIKey)
	req.Header.Set(apiHostHeader, c.APIHost)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", path, err)
	}

	slog.DebugContext(ctx, "provider call finished",
		slog.String("provider", c.Name),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
