package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyCols = []string{"key_id", "key_hash", "user_id", "created_at", "expires_at"}

func TestKeyRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyRepository(db, nil)

	userID := uuid.New()
	keyID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	mock.ExpectQuery("INSERT INTO keys").
		WithArgs("digest", sqlmock.AnyArg(), expiresAt).
		WillReturnRows(sqlmock.NewRows(keyCols).
			AddRow(keyID.String(), "digest", userID.String(), time.Now(), expiresAt))

	key, err := repo.Save(context.Background(), userID, "digest", expiresAt)
	require.NoError(t, err)
	assert.Equal(t, keyID, key.KeyID)
	assert.Equal(t, userID, key.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyRepository_SaveDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyRepository(db, nil)

	mock.ExpectQuery("INSERT INTO keys").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Save(context.Background(), uuid.New(), "digest", time.Now())
	assert.ErrorIs(t, err, models.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyRepository_GetByHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyRepository(db, nil)

	userID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM keys WHERE key_hash").
		WithArgs("digest").
		WillReturnRows(sqlmock.NewRows(keyCols).
			AddRow(uuid.NewString(), "digest", userID.String(), time.Now(), time.Now().Add(time.Hour)))
	mock.ExpectQuery("SELECT (.+) FROM keys WHERE key_hash").
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows(keyCols))

	key, err := repo.GetByHash(context.Background(), "digest")
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, userID, key.UserID)

	key, err = repo.GetByHash(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, key)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyRepository_DeleteByUserID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewKeyRepository(db, func(context.Context) *sqlx.Tx { return tx })

	mock.ExpectExec("DELETE FROM keys WHERE user_id").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteByUserID(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
