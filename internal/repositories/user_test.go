package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/migrations"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a postgres container and applies the embedded migrations.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(ctx, db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db, nil)
	ctx := context.Background()

	alice, err := writeRepo.Save(ctx, "aliceSmith", "alice@example.com", "hash-1")
	require.NoError(t, err)
	require.NotNil(t, alice)
	assert.NotEqual(t, uuid.Nil, alice.UserID)
	assert.Equal(t, models.RoleUser, alice.Role)
	assert.False(t, alice.CreatedAt.IsZero())

	bob, err := writeRepo.Save(ctx, "bobJohnson", "bob@example.com", "hash-2")
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "otherAlice", "alice@example.com", "hash-3")
		assert.ErrorIs(t, err, models.ErrDuplicate)
	})

	t.Run("get by id", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, alice.UserID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "aliceSmith", user.Username)
		assert.Equal(t, "hash-1", user.PasswordHash)
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, bob.UserID, user.UserID)
	})

	t.Run("missing user", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("list", func(t *testing.T) {
		users, err := readRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("update password", func(t *testing.T) {
		require.NoError(t, writeRepo.UpdatePassword(ctx, bob.UserID, "new-hash"))

		user, err := readRepo.GetByID(ctx, bob.UserID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := writeRepo.DeleteByID(ctx, bob.UserID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, "bob@example.com", deleted.Email)

		deleted, err = writeRepo.DeleteByID(ctx, bob.UserID)
		assert.NoError(t, err)
		assert.Nil(t, deleted)
	})

	t.Run("uses request transaction", func(t *testing.T) {
		tx, err := db.Beginx()
		require.NoError(t, err)

		txGetter := func(context.Context) *sqlx.Tx { return tx }
		txRepo := NewUserWriteRepository(db, txGetter)

		_, err = txRepo.Save(ctx, "carolWhite", "carol@example.com", "hash-4")
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		user, err := readRepo.GetByEmail(ctx, "carol@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
