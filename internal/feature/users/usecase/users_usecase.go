package usecase

import (
	"context"
	"fmt"

	"auth_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and fills in its ID and timestamps.
	// It returns ErrEmailInUse if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns every user with the given email. An empty slice is not an error.
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// usersUsecase is the user-storage service that signup and signin build on.
type usersUsecase struct {
	repo UserRepository
}

// NewUsersUsecase creates a new instance of usersUsecase.
func NewUsersUsecase(repo UserRepository) *usersUsecase {
	return &usersUsecase{repo: repo}
}

// Find returns the users registered under email.
func (u *usersUsecase) Find(ctx context.Context, email string) ([]*entity.User, error) {
	users, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// Create stores a user with the password exactly as given.
func (u *usersUsecase) Create(ctx context.Context, email, password string) (*entity.User, error) {
	user := &entity.User{Email: email, Password: password}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindOne returns the user with the given ID.
func (u *usersUsecase) FindOne(ctx context.Context, id uint) (*entity.User, error) {
	if id == 0 {
		return nil, ErrUserNotFound
	}
	return u.repo.FindByID(ctx, id)
}
