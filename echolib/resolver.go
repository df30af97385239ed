package echolib

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns an address which is attributed to a caller. An
// explicit ip query parameter wins, then X-Forwarded-For header, then
// a transport peer address.
//
// Nothing is validated here: a forwarded header is returned as is,
// even if it contains a list of hops.
func ClientIP(req *http.Request) string {
	if ip := req.URL.Query().Get("ip"); ip != "" {
		return ip
	}

	if forwarded := req.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	return PeerAddress(req)
}

// PeerAddress returns a host part of a transport peer address. This is
// a key for rate limiting, it never depends on client-controlled data.
func PeerAddress(req *http.Request) string {
	addr := strings.TrimSpace(req.RemoteAddr)

	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		return host
	}

	return addr
}
