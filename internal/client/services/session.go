// Package services contains application services for the hostctl CLI: the
// session facade owning identity state, and thin domain services (instances,
// billing, tickets) between the CLI and the API client.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
	"github.com/dmitrijs2005/hostctl/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService is the only component the rest of the application talks to
// for identity state.
//
// Contract:
//   - Login: authenticate, persist credentials and account snapshot.
//   - Logout: revoke server-side best-effort, always clear local state.
//   - CurrentUser: cached snapshot for display; nil when logged out.
//   - RefreshUser: re-fetch the snapshot; failure never invalidates the session.
type SessionService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
	RefreshUser(ctx context.Context) (*models.User, error)
	IsAuthenticated(ctx context.Context) bool
	Close(ctx context.Context) error
}

type sessionService struct {
	client api.Client
	store  *tokens.Store
	log    logging.Logger

	mu   sync.RWMutex
	user *models.User
}

// NewSessionService constructs a SessionService bound to the given API client
// and token store.
func NewSessionService(client api.Client, store *tokens.Store, log logging.Logger) SessionService {
	return &sessionService{client: client, store: store, log: log}
}

func (s *sessionService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	res, err := s.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := s.store.Save(ctx, res.Tokens); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	user := res.User
	if user == nil {
		// some deployments omit the user from the login response
		user = userFromClaims(res.Tokens.AccessToken)
	}
	if user != nil {
		if err := s.store.SaveUser(ctx, user); err != nil {
			s.log.Warn(ctx, "failed to cache account snapshot", "error", err)
		}
	}

	s.setUser(user)
	return user, nil
}

// Logout clears the session. The server-side revocation is best-effort: local
// state is cleared no matter what.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}

	s.setUser(nil)
	return s.store.Clear(ctx)
}

// CurrentUser returns the cached snapshot: the in-memory copy first, then the
// persisted one, then a best-effort decode of the access token's claims.
// Display data only, never an authorization decision.
func (s *sessionService) CurrentUser(ctx context.Context) *models.User {
	s.mu.RLock()
	u := s.user
	s.mu.RUnlock()
	if u != nil {
		return u
	}

	if stored, err := s.store.User(ctx); err == nil && stored != nil {
		s.setUser(stored)
		return stored
	}

	if at, err := s.store.AccessToken(ctx); err == nil && at != "" {
		if claims := userFromClaims(at); claims != nil {
			s.setUser(claims)
			return claims
		}
	}
	return nil
}

func (s *sessionService) RefreshUser(ctx context.Context) (*models.User, error) {
	u, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveUser(ctx, u); err != nil {
		s.log.Warn(ctx, "failed to cache account snapshot", "error", err)
	}
	s.setUser(u)
	return u, nil
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	at, err := s.store.AccessToken(ctx)
	return err == nil && at != ""
}

func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}

func (s *sessionService) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// userFromClaims decodes standard claims out of the access token without
// verifying the signature. Good enough for a display fallback; the backend is
// the only party that validates tokens.
func userFromClaims(accessToken string) *models.User {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil
	}

	u := &models.User{ID: sub}
	if email, ok := claims["email"].(string); ok {
		u.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		u.Role = role
	}
	return u
}
