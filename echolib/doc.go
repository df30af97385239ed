// Package echolib reports a caller's IP address with optional
// geolocation and ASN details.
//
// echolib is a core of the echoip project. The rest of the application
// shows how to wire it: how to configure rate limits, which provider to
// use and how to log.
//
// The package exposes an http.Handler built by NewHTTPHandler. Each
// request gets its client IP resolved (query parameter, then
// X-Forwarded-For, then a transport peer address), is metered by
// RateLimiter against a transport peer address and, for geo/asn
// routes, is resolved by a Provider. Responses are rendered as plain
// text or as JSON if a path ends with /json.
package echolib
