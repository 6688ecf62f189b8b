package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikds/careerpath-be/internal/database"
)

// newTestDB opens an in-memory sqlite database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	// one connection so every statement sees the same in-memory database
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	assert.Greater(t, user.ID, int64(0))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")
}

func TestCreateUserDuplicates(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "alice", "other@x.com", "pw123")
	assert.ErrorIs(t, err, ErrDuplicateUser, "duplicate username")

	_, err = svc.CreateUser(ctx, "other", "alice@x.com", "pw123")
	assert.ErrorIs(t, err, ErrDuplicateUser, "duplicate email")
}

func TestPasswordStoredHashed(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	var stored string
	require.NoError(t, db.QueryRow("SELECT password_hash FROM users WHERE username = 'alice'").Scan(&stored))
	assert.NotEqual(t, "pw123", stored)
	assert.NotContains(t, stored, "pw123")
}

func TestAuthenticateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.AuthenticateUser(ctx, "alice@x.com", "pw123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.AuthenticateUser(ctx, "alice@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.AuthenticateUser(ctx, "nobody@x.com", "pw123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
