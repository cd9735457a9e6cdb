package tokens

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
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
	return NewStore(db)
}

func TestSave_WritesAccessTokenAndExpiryTogether(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Save(ctx, Update{AccessToken: "a", ExpiresIn: 3600}))

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", at)

	exp, err := s.ExpiresAt(ctx)
	require.NoError(t, err)
	require.Equal(t, base.Add(time.Hour).UnixMilli(), exp.UnixMilli())
}

func TestSave_PreservesRefreshTokenWhenOmitted(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Update{AccessToken: "a1", RefreshToken: "r1", ExpiresIn: 60}))
	require.NoError(t, s.Save(ctx, Update{AccessToken: "a2", ExpiresIn: 60}))

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "r1", rt)

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "a2", at)
}

func TestClear_RemovesEverything_AndIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Update{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60}))
	require.NoError(t, s.SaveUser(ctx, &models.User{ID: "u1", Email: "u@example.com"}))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Empty(t, at)

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	require.Empty(t, rt)

	exp, err := s.ExpiresAt(ctx)
	require.NoError(t, err)
	require.True(t, exp.IsZero())

	u, err := s.User(ctx)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestStore_NotReady_AllOpsAreNoops(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	require.Empty(t, at)

	exp, err := s.ExpiresAt(ctx)
	require.NoError(t, err)
	require.True(t, exp.IsZero())

	require.NoError(t, s.Save(ctx, Update{AccessToken: "a", ExpiresIn: 60}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.SaveUser(ctx, &models.User{ID: "x"}))

	u, err := s.User(ctx)
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestExpiresAt_UnparseableValueTreatedAsAbsent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.repo.Set(ctx, keyExpiresAt, []byte("garbage")))

	exp, err := s.ExpiresAt(ctx)
	require.NoError(t, err)
	require.True(t, exp.IsZero())
}

func TestUserRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := &models.User{ID: "u1", Email: "u@example.com", Role: "user", Balance: 1250}
	require.NoError(t, s.SaveUser(ctx, in))

	out, err := s.User(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
