package echolib

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultHTTPTimeout       = 10 * time.Second
	DefaultRateLimitInterval = 10 * time.Millisecond
	DefaultRateLimitBurst    = 100
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("cannot wait for a rate limiter: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		io.Copy(io.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()

		return nil, fmt.Errorf("netloc has responded with %s", resp.Status)
	}

	return resp, nil
}

// NewHTTPClient prepares a new HTTP client, wraps it with rate limiter,
// sets a user agent etc.
//
// Rate limiter throttles outgoing requests to keep a geolocation
// service happy; it has nothing to do with limits of incoming requests.
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a meaning
// of its parameters.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	if client.Timeout == 0 {
		client.Timeout = DefaultHTTPTimeout
	}

	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst),
	}
}
