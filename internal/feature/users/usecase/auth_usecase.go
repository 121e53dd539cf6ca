package usecase

import (
	"context"
	"errors"
	"fmt"

	"auth_backend/internal/feature/users/domain/entity"
)

// UsersService is the user-storage collaborator of authUsecase.
type UsersService interface {
	// Find returns the users registered under email.
	Find(ctx context.Context, email string) ([]*entity.User, error)

	// Create stores a new user and returns it.
	Create(ctx context.Context, email, password string) (*entity.User, error)
}

// PasswordHasher encodes passwords as "<salt>.<hash>" and verifies them.
// Implemented by platform/password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// authUsecase implements signup and signin.
type authUsecase struct {
	users  UsersService
	hasher PasswordHasher
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UsersService, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
	}
}

// Signup registers a new user with a salted and hashed password.
func (u *authUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	existing, err := u.users.Find(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrEmailInUse
	}

	encoded, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.users.Create(ctx, email, encoded)
	if err != nil {
		// The store may still reject the email if another signup won the race.
		if errors.Is(err, ErrEmailInUse) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Signin returns the stored user when email and password match.
func (u *authUsecase) Signin(ctx context.Context, email, password string) (*entity.User, error) {
	users, err := u.users.Find(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	user := users[0]

	ok, err := u.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrBadPassword
	}
	return user, nil
}
