package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactCols = []string{"contact_id", "name", "message", "email", "phone", "created_at"}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestContactRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, nil)

	id := uuid.New()
	now := time.Now()
	in := models.Contact{Name: "Ann", Message: "Hi", Email: "ann@example.com", Phone: "555-0100"}

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(in.Name, in.Message, in.Email, in.Phone).
		WillReturnRows(sqlmock.NewRows(contactCols).
			AddRow(id.String(), in.Name, in.Message, in.Email, in.Phone, now))

	saved, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, id, saved.ContactID)
	assert.Equal(t, "555-0100", saved.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_SaveError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, nil)

	mock.ExpectQuery("INSERT INTO contacts").WillReturnError(errors.New("db down"))

	saved, err := repo.Save(context.Background(), models.Contact{Name: "Ann"})
	assert.Error(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, nil)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM contacts").
		WillReturnRows(sqlmock.NewRows(contactCols).
			AddRow(uuid.NewString(), "Ann", "Hi", "ann@example.com", "555", now).
			AddRow(uuid.NewString(), "Ben", "Yo", "ben@example.com", "556", now))

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "Ben", contacts[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantNil bool
		wantErr bool
	}{
		{
			name: "deleted",
			rows: sqlmock.NewRows(contactCols).
				AddRow(uuid.NewString(), "Ann", "Hi", "ann@example.com", "555", time.Now()),
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(contactCols),
			wantNil: true,
		},
		{
			name:    "query error",
			err:     errors.New("boom"),
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewContactRepository(db, nil)

			id := uuid.New()
			exp := mock.ExpectQuery("DELETE FROM contacts").WithArgs(sqlmock.AnyArg())
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			c, err := repo.DeleteByID(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, c == nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
