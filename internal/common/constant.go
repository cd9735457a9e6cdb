// Package common contains shared constants and small helpers used across
// hostctl components.
package common

// AuthHeaderName is the HTTP header that carries the bearer credential on
// outbound API requests.
const AuthHeaderName = "Authorization"

// BearerPrefix prefixes the access token inside the auth header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-Id"
