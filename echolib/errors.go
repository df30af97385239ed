package echolib

import (
	"errors"
	"net/http"
)

// ErrInvalidRateLimit is returned if rate limit has zero limit or zero
// period.
var ErrInvalidRateLimit = errors.New("invalid rate limit")

type httpError struct {
	message    string
	statusCode int
}

func (h *httpError) Message() string {
	if h == nil {
		return ""
	}

	return h.message
}

func (h *httpError) StatusCode() int {
	if h != nil && h.statusCode != 0 {
		return h.statusCode
	}

	return http.StatusInternalServerError
}

func (h *httpError) Error() string {
	if h == nil {
		return ""
	}

	return h.message
}
