// Package api contains the HTTP client for the hosting platform backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the customer-facing platform operations: Login/Logout/Me, instances,
//     plans, orders, gift codes, tickets, Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that decodes the
//     platform's {code, message, data} response envelope, attaches the bearer
//     credential, proactively refreshes a token close to expiry, and on an
//     authentication rejection refreshes and replays the request exactly once.
//  3. The refresh coordinator (see Refresher) guaranteeing at most one
//     in-flight token refresh system-wide; concurrent callers share the one
//     outcome.
//
// # Error Handling
//
// Failure classes are exposed as sentinel errors matched with errors.Is
// (ErrUnavailable, ErrSessionExpired, ErrNoRefreshToken) plus the *Error type
// carrying an application-level code and server message. A terminal
// authentication failure clears the local session and fires the configured
// session-expired hook before surfacing ErrSessionExpired.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; an in-flight refresh is detached from the triggering
// context and always runs to completion.
package api
