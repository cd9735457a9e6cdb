// Package tokens implements the client-side token store: the single place
// where the session credentials (access token, refresh token, expiry) and the
// cached account snapshot are persisted between runs.
//
// The store is pure persistence. Deciding when to refresh and performing the
// refresh live in the api package.
package tokens

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
	"github.com/dmitrijs2005/hostctl/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hostctl/internal/dbx"
)

// Storage keys. String-keyed, string-valued, matching the platform's client
// storage contract.
const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyExpiresAt    = "tokenExpiresAt"
	keyUser         = "user"
)

// Update carries the fields of a login or refresh response that mutate the
// stored record. RefreshToken may be empty: a refresh response that omits a
// new refresh token keeps the previously stored one.
type Update struct {
	AccessToken  string
	RefreshToken string

	// ExpiresIn is the relative lifetime in seconds. The absolute expiry is
	// always computed locally; the server clock is never trusted.
	ExpiresIn int64
}

// Store reads and writes the token record. All methods are no-ops returning
// zero values when the store was built without a database handle (storage
// medium not ready), rather than erroring.
type Store struct {
	db   *sql.DB
	repo metadata.Repository

	now func() time.Time // test seam
}

func NewStore(db *sql.DB) *Store {
	s := &Store{db: db, now: time.Now}
	if db != nil {
		s.repo = metadata.NewSQLiteRepository(db)
	}
	return s
}

func (s *Store) ready() bool {
	return s.db != nil
}

func (s *Store) getString(ctx context.Context, key string) (string, error) {
	if !s.ready() {
		return "", nil
	}
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// AccessToken returns the stored bearer credential, or "" when absent.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.getString(ctx, keyAccessToken)
}

// RefreshToken returns the stored refresh credential, or "" when absent.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.getString(ctx, keyRefreshToken)
}

// ExpiresAt returns the absolute expiry of the access token, or the zero time
// when absent.
func (s *Store) ExpiresAt(ctx context.Context) (time.Time, error) {
	raw, err := s.getString(ctx, keyExpiresAt)
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// unreadable value is treated as absent; the next save overwrites it
		return time.Time{}, nil
	}
	return time.UnixMilli(ms), nil
}

// Save writes the token record atomically: the access token and its computed
// expiry always land together, and the refresh token is updated only when the
// update carries one.
func (s *Store) Save(ctx context.Context, upd Update) error {
	if !s.ready() {
		return nil
	}

	expiresAt := s.now().Add(time.Duration(upd.ExpiresIn) * time.Second).UnixMilli()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(upd.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyExpiresAt, []byte(strconv.FormatInt(expiresAt, 10))); err != nil {
			return err
		}
		if upd.RefreshToken != "" {
			if err := repo.Set(ctx, keyRefreshToken, []byte(upd.RefreshToken)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes the whole record (tokens, expiry, user snapshot) in one
// transaction. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if !s.ready() {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo.WithTx(tx)
		for _, key := range []string{keyAccessToken, keyRefreshToken, keyExpiresAt, keyUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveUser persists the account snapshot for display between runs.
func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	if !s.ready() {
		return nil
	}
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, keyUser, data)
}

// User returns the cached account snapshot, or nil when absent or unreadable.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	raw, err := s.getString(ctx, keyUser)
	if err != nil || raw == "" {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, nil
	}
	return &u, nil
}
