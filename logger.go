package main

import (
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/9seconds/echoip/echolib"
)

type logger struct {
	lookupLog    zerolog.Logger
	rateLimitLog zerolog.Logger
	accessLog    zerolog.Logger
	serverLog    zerolog.Logger
}

func (l *logger) LookupError(ip, name string, err error) {
	l.lookupLog.Warn().Str("provider", name).Str("ip", ip).Err(err).Msg("")
}

func (l *logger) RateLimitExceeded(key string, limit echolib.RateLimit) {
	l.rateLimitLog.Info().Str("key", key).Stringer("limit", limit).Msg("Rate limit exceeded")
}

func (l *logger) Access(req *http.Request, status, bytesWritten int, duration time.Duration) {
	l.accessLog.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", status).
		Int("bytes", bytesWritten).
		Dur("duration", duration).
		Str("remote_addr", req.RemoteAddr).
		Msg("")
}

func newLogger(w io.Writer) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Millisecond

	return &logger{
		lookupLog:    zerolog.New(w).With().Timestamp().Str("event_name", "lookup").Logger(),
		rateLimitLog: zerolog.New(w).With().Timestamp().Str("event_name", "ratelimit").Logger(),
		accessLog:    zerolog.New(w).With().Timestamp().Str("event_name", "access").Logger(),
		serverLog:    zerolog.New(w).With().Timestamp().Str("event_name", "server").Logger(),
	}
}
