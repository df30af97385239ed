package echolib

import (
	"context"
	"net/http"
)

// HTTPClient is an interface for http.Client-alike entities. Providers
// use it for their requests.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Provider resolves geolocation data for a given IP address. IP is
// passed in a form it was received from a client, without validation.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (Record, error)
}

// Logger receives events which are interesting for operators.
type Logger interface {
	LookupError(ip, name string, err error)
	RateLimitExceeded(key string, limit RateLimit)
}
