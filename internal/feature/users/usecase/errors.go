// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

// Error categories. Concrete errors below wrap exactly one of them so that
// transport layers can map them with errors.Is.
var (
	// ErrBadRequest marks errors caused by the caller's input.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks errors for resources that do not exist.
	ErrNotFound = errors.New("not found")
)

// AuthError is a user-facing error that belongs to a category.
type AuthError struct {
	kind error
	msg  string
}

func (e *AuthError) Error() string { return e.msg }

// Unwrap returns the category so errors.Is(err, ErrBadRequest) works.
func (e *AuthError) Unwrap() error { return e.kind }

var (
	// ErrEmailInUse is returned when signing up with an email that already exists.
	ErrEmailInUse = &AuthError{kind: ErrBadRequest, msg: "email in use"}

	// ErrUserNotFound is returned when no user matches the given email or ID.
	ErrUserNotFound = &AuthError{kind: ErrNotFound, msg: "user not found"}

	// ErrBadPassword is returned when the supplied password does not match.
	ErrBadPassword = &AuthError{kind: ErrBadRequest, msg: "bad password"}
)
