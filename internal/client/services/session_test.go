package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/hostctl/internal/client/api"
	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/dmitrijs2005/hostctl/internal/client/tokens"
	"github.com/dmitrijs2005/hostctl/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *tokens.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return tokens.NewStore(db)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_PersistsTokensAndUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	f := &fakeClient{
		LoginRet: &api.LoginResult{
			Tokens: tokens.Update{AccessToken: "A", RefreshToken: "R", ExpiresIn: 3600},
			User:   &models.User{ID: "u1", Email: "u@example.com", Role: "user", Balance: 500},
		},
	}
	s := NewSessionService(f, store, testLogger())

	u, err := s.Login(ctx, "u@example.com", []byte("secret"))
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, "u@example.com", f.LastLoginEmail)
	require.Equal(t, "secret", f.LastLoginPassword)

	at, err := store.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "A", at)

	require.True(t, s.IsAuthenticated(ctx))
	require.Equal(t, "u1", s.CurrentUser(ctx).ID)
}

func TestLogin_Failure_LeavesSessionEmpty(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	f := &fakeClient{LoginErr: &api.Error{Code: 403, Message: "bad credentials"}}
	s := NewSessionService(f, store, testLogger())

	_, err := s.Login(ctx, "u@example.com", []byte("wrong"))
	require.Error(t, err)
	require.False(t, s.IsAuthenticated(ctx))
	require.Nil(t, s.CurrentUser(ctx))
}

func TestLogin_UserOmitted_FallsBackToTokenClaims(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	claims := jwt.MapClaims{"sub": "u9", "email": "claims@example.com", "role": "admin"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	f := &fakeClient{
		LoginRet: &api.LoginResult{
			Tokens: tokens.Update{AccessToken: signed, RefreshToken: "R", ExpiresIn: 3600},
		},
	}
	s := NewSessionService(f, store, testLogger())

	u, err := s.Login(ctx, "claims@example.com", []byte("pw"))
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "u9", u.ID)
	require.Equal(t, "claims@example.com", u.Email)
	require.Equal(t, "admin", u.Role)
}

func TestLogout_ClearsLocalState_EvenWhenServerFails(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	f := &fakeClient{
		LoginRet: &api.LoginResult{
			Tokens: tokens.Update{AccessToken: "A", RefreshToken: "R", ExpiresIn: 3600},
			User:   &models.User{ID: "u1"},
		},
		LogoutErr: errors.New("backend down"),
	}
	s := NewSessionService(f, store, testLogger())

	_, err := s.Login(ctx, "u@example.com", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.Equal(t, 1, f.LogoutCalls)
	require.False(t, s.IsAuthenticated(ctx))
	require.Nil(t, s.CurrentUser(ctx))
}

func TestCurrentUser_ReadsPersistedSnapshotAfterRestart(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUser(ctx, &models.User{ID: "u1", Email: "u@example.com"}))

	// fresh service, empty in-memory cache: simulates a new process
	s := NewSessionService(&fakeClient{}, store, testLogger())

	u := s.CurrentUser(ctx)
	require.NotNil(t, u)
	require.Equal(t, "u1", u.ID)
}

func TestRefreshUser_UpdatesCache(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	f := &fakeClient{MeRet: &models.User{ID: "u1", Balance: 999}}
	s := NewSessionService(f, store, testLogger())

	u, err := s.RefreshUser(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 999, u.Balance)
	require.EqualValues(t, 999, s.CurrentUser(ctx).Balance)

	stored, err := store.User(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 999, stored.Balance)
}

func TestRefreshUser_FailureKeepsSession(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, tokens.Update{AccessToken: "A", RefreshToken: "R", ExpiresIn: 3600}))

	f := &fakeClient{MeErr: api.ErrUnavailable}
	s := NewSessionService(f, store, testLogger())

	_, err := s.RefreshUser(ctx)
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.True(t, s.IsAuthenticated(ctx))
}

func TestUserFromClaims_GarbageToken_ReturnsNil(t *testing.T) {
	require.Nil(t, userFromClaims("not-a-jwt"))
	require.Nil(t, userFromClaims(""))
}
