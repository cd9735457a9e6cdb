// Package metadata implements a small key-value repository for local client
// state (session tokens, cached account snapshot).
package metadata

import (
	"context"

	"github.com/dmitrijs2005/hostctl/internal/dbx"
)

// Repository is a string-keyed, byte-valued store. Get returns (nil, nil)
// for an absent key; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	// WithTx returns a repository bound to the given transactional handle.
	WithTx(tx dbx.DBTX) Repository
}
