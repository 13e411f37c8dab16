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

const contactColumns = `contact_id, name, message, email, phone, created_at`

// ContactRepository stores contact form submissions.
type ContactRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewContactRepository(db *sqlx.DB, txGetter TxGetter) *ContactRepository {
	return &ContactRepository{db: db, txGetter: txGetter}
}

func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	const query = `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`

	contacts := []models.Contact{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &contacts, query)
	logQuery(ctx, query, nil, len(contacts), err)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) Save(ctx context.Context, c models.Contact) (*models.Contact, error) {
	const query = `
		INSERT INTO contacts (name, message, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + contactColumns

	args := []any{c.Name, c.Message, c.Email, c.Phone}

	var saved models.Contact
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(ctx, query, args, saved.ContactID, err)
	if err != nil {
		return nil, fmt.Errorf("save contact: %w", mapError(err))
	}
	return &saved, nil
}

// DeleteByID returns the removed contact, or nil when nothing matched.
func (r *ContactRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	const query = `DELETE FROM contacts WHERE contact_id = $1 RETURNING ` + contactColumns

	var c models.Contact
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &c, query, id)
	logQuery(ctx, query, []any{id}, c.ContactID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete contact: %w", err)
	}
	return &c, nil
}
