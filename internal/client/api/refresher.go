package api

import (
	"context"

	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
	"github.com/dmitrijs2005/hostctl/internal/logging"
	"golang.org/x/sync/singleflight"
)

// refreshCall performs the actual refresh request. It must bypass the request
// pipeline: the refresh endpoint cannot trigger another refresh.
type refreshCall func(ctx context.Context, refreshToken string) (*tokenPayload, error)

// Refresher guarantees at most one token refresh in flight system-wide.
// Callers that request a refresh while one is outstanding attach to it and
// observe the same outcome; a completed refresh (success or failure) leaves
// no state behind, so the next request starts an independent attempt.
type Refresher struct {
	sf    singleflight.Group
	store *tokens.Store
	call  refreshCall
	log   logging.Logger

	// onSessionExpired is invoked after a failed refresh clears the session.
	// The CLI uses it to drop back to the login prompt.
	onSessionExpired func()
}

func newRefresher(store *tokens.Store, call refreshCall, onSessionExpired func(), log logging.Logger) *Refresher {
	return &Refresher{store: store, call: call, onSessionExpired: onSessionExpired, log: log}
}

// Refresh exchanges the stored refresh token for a new access token.
//
// On success the new credentials are saved; a refresh response without a new
// refresh token keeps the stored one. On a network or rejected-credential
// failure the whole session record is cleared and the session-expired hook
// fires. ErrNoRefreshToken is returned without a network call and without
// touching storage.
func (r *Refresher) Refresh(ctx context.Context) error {
	// Detached from the triggering context: once started, the refresh runs to
	// completion so every waiter observes a definite outcome.
	_, err, _ := r.sf.Do("refresh", func() (any, error) {
		return nil, r.refresh(context.WithoutCancel(ctx))
	})
	return err
}

func (r *Refresher) refresh(ctx context.Context) error {
	refreshToken, err := r.store.RefreshToken(ctx)
	if err != nil {
		return err
	}
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	payload, err := r.call(ctx, refreshToken)
	if err != nil {
		r.log.Warn(ctx, "token refresh failed, clearing session", "error", err)
		_ = r.store.Clear(ctx)
		if r.onSessionExpired != nil {
			r.onSessionExpired()
		}
		return err
	}

	if err := r.store.Save(ctx, tokens.Update{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}); err != nil {
		return err
	}

	r.log.Debug(ctx, "access token refreshed", "expires_in", payload.ExpiresIn)
	return nil
}
