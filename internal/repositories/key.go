package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

const keyColumns = `key_id, key_hash, user_id, created_at, expires_at`

// KeyRepository stores password reset keys.
type KeyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewKeyRepository(db *sqlx.DB, txGetter TxGetter) *KeyRepository {
	return &KeyRepository{db: db, txGetter: txGetter}
}

func (r *KeyRepository) Save(ctx context.Context, userID uuid.UUID, hash string, expiresAt time.Time) (*models.Key, error) {
	const query = `
		INSERT INTO keys (key_hash, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING ` + keyColumns

	var key models.Key
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &key, query, hash, userID, expiresAt)
	logQuery(ctx, query, []any{userID, expiresAt}, key.KeyID, err)
	if err != nil {
		return nil, fmt.Errorf("save key: %w", mapError(err))
	}
	return &key, nil
}

// GetByHash returns nil, nil when no key has the digest.
func (r *KeyRepository) GetByHash(ctx context.Context, hash string) (*models.Key, error) {
	const query = `SELECT ` + keyColumns + ` FROM keys WHERE key_hash = $1`

	var key models.Key
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &key, query, hash)
	logQuery(ctx, query, nil, key.KeyID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get key: %w", err)
	}
	return &key, nil
}

// DeleteByUserID removes every key issued to the user.
func (r *KeyRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM keys WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{userID}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
