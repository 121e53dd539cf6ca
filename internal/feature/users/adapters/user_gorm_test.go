package adapters

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := &entity.User{
			Email:    "ted@mail.com",
			Password: "a1b2c3d4e5f60708.ff00",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailInUse", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), &entity.User{Email: "george@royals.com", Password: "s.h1"})
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), &entity.User{Email: "george@royals.com", Password: "s.h2"})

		assert.ErrorIs(t, err, usecase.ErrEmailInUse)
		assert.ErrorIs(t, err, usecase.ErrBadRequest)
	})

	t.Run("nil user error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := &entity.User{Email: "find@example.com", Password: "salt.hash"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, expected.ID, found[0].ID, "ID does not match")
		assert.Equal(t, expected.Email, found[0].Email, "email does not match")
		assert.Equal(t, expected.Password, found[0].Password, "password does not match")
	})

	t.Run("unknown email returns empty result", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		users := []*entity.User{
			{Email: "user1@example.com", Password: "s.pass1"},
			{Email: "user2@example.com", Password: "s.pass2"},
			{Email: "user3@example.com", Password: "s.pass3"},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u), "failed to create test data")
		}

		found, err := repo.FindByEmail(context.Background(), "user2@example.com")

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, users[1].ID, found[0].ID, "ID does not match")
		assert.Equal(t, "s.pass2", found[0].Password, "password does not match")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := &entity.User{Email: "findbyid@example.com", Password: "salt.hash"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_Timestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	beforeCreate := time.Now()
	user := &entity.User{Email: "timestamp@example.com", Password: "salt.hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	afterCreate := time.Now()

	assert.False(t, user.CreatedAt.Before(beforeCreate), "CreatedAt is before creation time")
	assert.False(t, user.CreatedAt.After(afterCreate), "CreatedAt is after creation time")

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.CreatedAt.Unix(), found.CreatedAt.Unix(), "CreatedAt does not match")
}

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres other error", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "unrelated error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}
