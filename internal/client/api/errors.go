package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no usable response arrived at all
	// (connection refused, DNS failure, timeout). Token state is untouched;
	// the caller may retry at its discretion.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired is the terminal authentication failure: the refresh
	// failed, or a request was rejected even after the post-refresh replay.
	// The local session has been cleared by the time this surfaces.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoRefreshToken means a refresh was requested with no refresh
	// credential stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")
)

// Error is an application-level failure: a well-formed envelope whose code is
// neither a success nor an authentication rejection. The message comes from
// the server verbatim.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}
