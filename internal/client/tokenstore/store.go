// Package tokenstore keeps the refresh token outside process memory.
//
// Two backends implement Store: KeyringStore uses the OS credential store
// (Keychain, Secret Service, Windows Credential Manager) and FileStore uses
// an encrypted SQLite vault for hosts that have none. Both key the token by
// a fixed service and account name.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("no stored token")

// Op names the credential store operation that failed.
type Op string

const (
	OpCreate Op = "create entry"
	OpGet    Op = "get password"
	OpSet    Op = "set password"
	OpDelete Op = "delete credential"
)

// Error is a failure of one store operation. Err may be ErrNotFound.
type Error struct {
	Op      Op
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Store persists a single opaque token.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Unavailable stands in for a backend that could not be opened. Every
// operation fails with Err, so callers treat the user as signed out.
type Unavailable struct {
	Err error
}

func (u Unavailable) Get(context.Context) (string, error) { return "", u.Err }

func (u Unavailable) Set(context.Context, string) error { return u.Err }

func (u Unavailable) Delete(context.Context) error { return u.Err }
