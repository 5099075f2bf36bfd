package credentials

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("credential not found")

// Record is a sealed credential. Ciphertext and Nonce are opaque to the
// repository.
type Record struct {
	Service    string
	Account    string
	Ciphertext []byte
	Nonce      []byte
	UpdatedAt  time.Time
}

type Repository interface {
	Get(ctx context.Context, service, account string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, service, account string) error
}
