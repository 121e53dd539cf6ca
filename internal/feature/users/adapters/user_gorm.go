// Package adapters provides repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

var errNilUser = errors.New("user is nil")

// userGorm is a GORM implementation of the UserRepository interface.
// It works with any dialector opened by platform/db (PostgreSQL or SQLite).
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A unique-key violation on email returns usecase.ErrEmailInUse.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errNilUser
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailInUse
		}
		return err
	}
	return nil
}

// FindByEmail returns all users with the given email.
func (r *userGorm) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isDuplicateKey recognizes both GORM's translated error and a raw PostgreSQL one.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
