// Echoip is a service which tells callers their IP address and, on
// request, where this address is located.
//
// Idea is simple: you do curl https://example.com/ and get your
// address back. Do curl https://example.com/geo and get a country and
// a city. Append /json to get a machine-readable response.
//
// Tool itself is organized into 2 logical parts:
//
// Echolib
//
// echolib is a main package of the application which contains an HTTP
// handler, client IP resolution and rate limiting of incoming requests.
//
// Providers
//
// This package has an implementation of ipapi.co lookups.
//
// A main package wires both echolib and providers, reads limits from
// CLI flags or environment and starts an HTTP server.
package main
