package tokenstore

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"
)

const keyringBackend = "keyring"

// KeyringStore keeps the token in the OS credential store.
type KeyringStore struct {
	service string
	account string
}

func NewKeyringStore(service, account string) (*KeyringStore, error) {
	if service == "" || account == "" {
		return nil, &Error{Op: OpCreate, Backend: keyringBackend, Err: errors.New("service and account must be set")}
	}
	return &KeyringStore{service: service, account: account}, nil
}

func (s *KeyringStore) Get(_ context.Context) (string, error) {
	token, err := keyring.Get(s.service, s.account)
	if err != nil {
		return "", s.fail(OpGet, err)
	}
	return token, nil
}

func (s *KeyringStore) Set(_ context.Context, token string) error {
	if err := keyring.Set(s.service, s.account, token); err != nil {
		return s.fail(OpSet, err)
	}
	return nil
}

func (s *KeyringStore) Delete(_ context.Context) error {
	if err := keyring.Delete(s.service, s.account); err != nil {
		return s.fail(OpDelete, err)
	}
	return nil
}

func (s *KeyringStore) fail(op Op, err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		err = ErrNotFound
	}
	return &Error{Op: op, Backend: keyringBackend, Err: err}
}
