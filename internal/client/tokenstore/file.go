package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/storage"
	"github.com/dmitrijs2005/fictionalpotato/internal/common"
	"github.com/dmitrijs2005/fictionalpotato/internal/cryptox"
	"github.com/dmitrijs2005/fictionalpotato/internal/dbx"
	"github.com/dmitrijs2005/fictionalpotato/internal/filex"
)

const (
	fileBackend = "file"

	vaultDBName  = "vault.db"
	vaultKeyName = "vault.key"

	saltKey    = "kdf_salt"
	secretSize = 32
	saltSize   = 16
)

// FileStore keeps the token sealed in a local SQLite vault. The sealing key
// is derived from a random per-install secret file and a salt kept in the
// vault's metadata table, so neither file alone reveals the token.
type FileStore struct {
	db      *sql.DB
	repo    credentials.Repository
	key     []byte
	service string
	account string
	now     func() time.Time
}

// OpenFileStore opens (creating if needed) the vault under dir.
func OpenFileStore(ctx context.Context, dir, service, account string) (*FileStore, error) {
	fail := func(err error) error {
		return &Error{Op: OpCreate, Backend: fileBackend, Err: err}
	}
	if service == "" || account == "" {
		return nil, fail(errors.New("service and account must be set"))
	}

	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fail(err)
	}

	secret, err := filex.LoadOrCreate(filepath.Join(dir, vaultKeyName), func() []byte {
		return common.GenerateRandByteArray(secretSize)
	})
	if err != nil {
		return nil, fail(err)
	}
	defer common.WipeByteArray(secret)

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, vaultDBName))
	if err != nil {
		return nil, fail(err)
	}

	salt, err := loadOrCreateSalt(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fail(err)
	}

	key, err := cryptox.DeriveKey(secret, salt, service+"/"+account)
	if err != nil {
		_ = db.Close()
		return nil, fail(err)
	}

	return &FileStore{
		db:      db,
		repo:    credentials.NewSQLiteRepository(db),
		key:     key,
		service: service,
		account: account,
		now:     time.Now,
	}, nil
}

// loadOrCreateSalt reads the vault salt, generating it on first use. The
// read and the write share one transaction.
func loadOrCreateSalt(ctx context.Context, db *sql.DB) ([]byte, error) {
	var salt []byte
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, saltKey)
		if err != nil {
			return err
		}
		if existing != nil {
			salt = existing
			return nil
		}

		salt = common.GenerateRandByteArray(saltSize)
		return repo.Set(ctx, saltKey, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("vault salt: %w", err)
	}
	return salt, nil
}

func (s *FileStore) Get(ctx context.Context) (string, error) {
	rec, err := s.repo.Get(ctx, s.service, s.account)
	if err != nil {
		return "", s.fail(OpGet, err)
	}

	plaintext, err := cryptox.Open(s.key, rec.Ciphertext, rec.Nonce)
	if err != nil {
		return "", s.fail(OpGet, err)
	}
	return string(plaintext), nil
}

func (s *FileStore) Set(ctx context.Context, token string) error {
	ciphertext, nonce, err := cryptox.Seal(s.key, []byte(token))
	if err != nil {
		return s.fail(OpSet, err)
	}

	rec := &credentials.Record{
		Service:    s.service,
		Account:    s.account,
		Ciphertext: ciphertext,
		Nonce:      nonce,
		UpdatedAt:  s.now(),
	}
	if err := s.repo.Put(ctx, rec); err != nil {
		return s.fail(OpSet, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.service, s.account); err != nil {
		return s.fail(OpDelete, err)
	}
	return nil
}

// Close releases the vault database.
func (s *FileStore) Close() error {
	common.WipeByteArray(s.key)
	return s.db.Close()
}

func (s *FileStore) fail(op Op, err error) error {
	if errors.Is(err, credentials.ErrNotFound) {
		err = ErrNotFound
	}
	return &Error{Op: op, Backend: fileBackend, Err: err}
}
