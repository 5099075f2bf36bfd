package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fictionalpotato/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns ErrNotFound when no row matches.
func (r *SQLiteRepository) Get(ctx context.Context, service, account string) (*Record, error) {
	query := `SELECT service, account, ciphertext, nonce, updated_at
		FROM credentials WHERE service = ? AND account = ?`

	rec := &Record{}
	err := r.db.QueryRowContext(ctx, query, service, account).
		Scan(&rec.Service, &rec.Account, &rec.Ciphertext, &rec.Nonce, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential %s/%s: %w", service, account, err)
	}
	return rec, nil
}

// Put inserts the record or replaces the existing one.
func (r *SQLiteRepository) Put(ctx context.Context, rec *Record) error {
	query := `INSERT INTO credentials (service, account, ciphertext, nonce, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(service, account) DO UPDATE SET
			ciphertext = excluded.ciphertext,
			nonce = excluded.nonce,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query, rec.Service, rec.Account, rec.Ciphertext, rec.Nonce, rec.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to put credential %s/%s: %w", rec.Service, rec.Account, err)
	}
	return nil
}

// Delete returns ErrNotFound when there was nothing to delete.
func (r *SQLiteRepository) Delete(ctx context.Context, service, account string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE service = ? AND account = ?`, service, account)
	if err != nil {
		return fmt.Errorf("failed to delete credential %s/%s: %w", service, account, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete credential %s/%s: %w", service, account, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
