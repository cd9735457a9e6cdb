package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
	"github.com/dmitrijs2005/hostctl/internal/common"
	"github.com/dmitrijs2005/hostctl/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultLookahead = 5 * time.Minute
)

// callState tracks how far a single logical call has progressed through
// authentication recovery. A call is replayed at most once: stateRetried is a
// dead end, which makes a retry loop structurally impossible.
type callState int

const (
	stateInit callState = iota
	stateRetried
)

// Options configures an HTTPClient.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api".
	BaseURL string

	// Timeout bounds every individual HTTP call. Default 10s.
	Timeout time.Duration

	// RefreshLookahead is how close to expiry a token may get before a call
	// proactively refreshes it. Default 5m.
	RefreshLookahead time.Duration

	// OnSessionExpired is invoked once a terminal authentication failure has
	// cleared the session. Optional.
	OnSessionExpired func()

	Logger logging.Logger
}

// HTTPClient implements Client over the platform's JSON envelope API.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	store     *tokens.Store
	refresher *Refresher
	lookahead time.Duration
	log       logging.Logger

	onSessionExpired func()

	now          func() time.Time // test seam
	newRequestID func() string    // test seam
}

func NewHTTPClient(store *tokens.Store, opts Options) *HTTPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RefreshLookahead <= 0 {
		opts.RefreshLookahead = defaultLookahead
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewSlogLogger(slog.Default())
	}

	c := &HTTPClient{
		baseURL:          strings.TrimRight(opts.BaseURL, "/"),
		http:             &http.Client{Timeout: opts.Timeout},
		store:            store,
		lookahead:        opts.RefreshLookahead,
		log:              opts.Logger,
		onSessionExpired: opts.OnSessionExpired,
		now:              time.Now,
		newRequestID:     uuid.NewString,
	}
	c.refresher = newRefresher(store, c.refreshTokens, opts.OnSessionExpired, opts.Logger)
	return c
}

// Refresher exposes the refresh coordinator, e.g. for a caller that wants to
// force a refresh outside the request path.
func (c *HTTPClient) Refresher() *Refresher {
	return c.refresher
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, c.newRequestID())
	return req, nil
}

// preflight refreshes the token ahead of a call when it is about to expire.
// Failures are logged and swallowed: the lookahead is a latency optimization,
// and the response path remains the authoritative authentication gate.
func (c *HTTPClient) preflight(ctx context.Context) {
	expiresAt, err := c.store.ExpiresAt(ctx)
	if err != nil || expiresAt.IsZero() {
		return
	}
	if expiresAt.Sub(c.now()) > c.lookahead {
		return
	}
	if err := c.refresher.Refresh(ctx); err != nil {
		c.log.Debug(ctx, "proactive token refresh failed", "error", err)
	}
}

// call is the entry point for every pipeline-managed request.
func (c *HTTPClient) call(ctx context.Context, method, path string, body any, out any) error {
	return c.do(ctx, method, path, body, out, stateInit)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, state callState) error {
	if state == stateInit {
		c.preflight(ctx)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.http.Timeout)
	defer cancel()

	req, err := c.newRequest(reqCtx, method, path, body)
	if err != nil {
		return err
	}

	if token, err := c.store.AccessToken(ctx); err == nil && token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	env, decErr := decodeEnvelope(resp.Body)

	unauthorized := resp.StatusCode == http.StatusUnauthorized ||
		(decErr == nil && env.Code == http.StatusUnauthorized)
	if unauthorized {
		return c.recoverAuth(ctx, method, path, body, out, state)
	}

	if decErr != nil {
		if resp.StatusCode >= 400 {
			return &Error{Code: resp.StatusCode, Message: resp.Status}
		}
		return fmt.Errorf("failed to decode response: %w", decErr)
	}

	if !env.success() {
		return &Error{Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// recoverAuth handles an authentication rejection: refresh once, replay once.
func (c *HTTPClient) recoverAuth(ctx context.Context, method, path string, body any, out any, state callState) error {
	if state == stateRetried {
		// the replayed request was rejected too
		c.expireSession(ctx)
		return ErrSessionExpired
	}

	if err := c.refresher.Refresh(ctx); err != nil {
		// a rejected or failed refresh already cleared the session inside the
		// refresher; the no-refresh-token case must be cleaned up here
		if errors.Is(err, ErrNoRefreshToken) {
			c.expireSession(ctx)
		}
		return fmt.Errorf("%w: %s", ErrSessionExpired, err)
	}

	return c.do(ctx, method, path, body, out, stateRetried)
}

func (c *HTTPClient) expireSession(ctx context.Context) {
	_ = c.store.Clear(ctx)
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// refreshTokens calls the refresh endpoint directly, bypassing the pipeline:
// no preflight, no bearer header, no replay.
func (c *HTTPClient) refreshTokens(ctx context.Context, refreshToken string) (*tokenPayload, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.http.Timeout)
	defer cancel()

	req, err := c.newRequest(reqCtx, http.MethodPost, "/auth/refresh", refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		if resp.StatusCode >= 400 {
			return nil, &Error{Code: resp.StatusCode, Message: resp.Status}
		}
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if !env.success() {
		return nil, &Error{Code: env.Code, Message: env.Message}
	}

	var payload tokenPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode refresh data: %w", err)
	}
	return &payload, nil
}
