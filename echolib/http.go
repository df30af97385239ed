package echolib

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	MessageGeoNotAvailable  = "Geolocation data not available"
	MessageDataNotAvailable = "Data not available"
	MessageRateLimited      = "Rate limit exceeded"

	jsonSuffix = "json"
)

type httpHandler struct {
	provider Provider
	limiter  *RateLimiter
	logger   Logger
}

func (h httpHandler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key := PeerAddress(req)

		limit, retryAfter, ok := h.limiter.Allow(key)
		if !ok {
			h.logger.RateLimitExceeded(key, limit)

			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			sendError(w, MessageRateLimited+": "+limit.String(), http.StatusTooManyRequests)

			return
		}

		next.ServeHTTP(w, req)
	})
}

func (h httpHandler) lookup(ctx context.Context, ip string) (Record, bool) {
	record, err := h.provider.Lookup(ctx, ip)
	if err != nil {
		h.logger.LookupError(ip, h.provider.Name(), err)

		return nil, false
	}

	return record, len(record) > 0
}

func (h httpHandler) handleNotFound(w http.ResponseWriter, req *http.Request) {
	sendError(w, "404 page not found", http.StatusNotFound)
}

func encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Set("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func sendText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, text) // nolint: errcheck
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
	}

	http.Error(w, e.Message(), e.StatusCode())
}

// splitJSONSuffix detaches a trailing /json from a subpath.
func splitJSONSuffix(subpath string) (string, bool) {
	subpath = strings.TrimSuffix(subpath, "/")

	switch {
	case subpath == jsonSuffix:
		return "", true
	case strings.HasSuffix(subpath, "/"+jsonSuffix):
		return strings.TrimSuffix(subpath, "/"+jsonSuffix), true
	}

	return subpath, false
}

// NewHTTPHandler builds a router for all public endpoints. Everything
// except of /help is metered by limiter.
func NewHTTPHandler(provider Provider, limiter *RateLimiter, logger Logger) http.Handler {
	handler := httpHandler{
		provider: provider,
		limiter:  limiter,
		logger:   logger,
	}
	router := chi.NewRouter()

	// middleware.RealIP is not mounted: it rewrites RemoteAddr from
	// headers and rate limiting must key on a real peer.
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(middleware.StripSlashes)

	router.Get("/help", handler.handleHelp)

	router.Group(func(r chi.Router) {
		r.Use(handler.rateLimit)

		r.Get("/", handler.handleIP)
		r.Get("/v4", handler.handleIP)
		r.Get("/v4/json", handler.handleIP)
		r.Get("/v6", handler.handleIP)
		r.Get("/v6/json", handler.handleIP)
		r.Get("/geo", handler.handleGeo)
		r.Get("/geo/*", handler.handleGeo)
		r.Get("/asn", handler.handleASN)
		r.Get("/asn/*", handler.handleASN)
	})

	router.NotFound(handler.rateLimit(http.HandlerFunc(handler.handleNotFound)).ServeHTTP)

	return router
}
