package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

const transactionColumns = `transaction_id, amount, description, is_debit, owner_id, created_at`

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns the transactions created by ownerID, newest first.
func (r *TransactionReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	txs := []models.Transaction{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query, ownerID)
	logQuery(ctx, query, []any{ownerID}, len(txs), err)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// ListAll returns every transaction, newest first.
func (r *TransactionReadRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC`

	txs := []models.Transaction{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txs, query)
	logQuery(ctx, query, nil, len(txs), err)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// GetByID returns the transaction with id. A non-nil ownerID restricts the
// lookup to that owner. Returns nil, nil when nothing matches.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*models.Transaction, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1
		  AND ($2::UUID IS NULL OR owner_id = $2)
	`

	var tx models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, id, ownerID)
	logQuery(ctx, query, []any{id, ownerID}, tx.TransactionID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction owned by ownerID.
func (r *TransactionWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, amount float64, description string, isDebit bool) (*models.Transaction, error) {
	const query = `
		INSERT INTO transactions (amount, description, is_debit, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + transactionColumns

	args := []any{amount, description, isDebit, ownerID}

	var tx models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, args...)
	logQuery(ctx, query, args, tx.TransactionID, err)
	if err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}
	return &tx, nil
}

// DeleteByID removes the transaction with id and returns it. A non-nil
// ownerID restricts the delete to that owner. Returns nil, nil when nothing
// was removed.
func (r *TransactionWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*models.Transaction, error) {
	const query = `
		DELETE FROM transactions
		WHERE transaction_id = $1
		  AND ($2::UUID IS NULL OR owner_id = $2)
		RETURNING ` + transactionColumns

	var tx models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tx, query, id, ownerID)
	logQuery(ctx, query, []any{id, ownerID}, tx.TransactionID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	return &tx, nil
}
