// Package metadata stores small vault-wide settings (such as the key
// derivation salt) as key/value pairs in the local SQLite database.
package metadata

import (
	"context"
)

// Repository reads and writes vault settings. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
