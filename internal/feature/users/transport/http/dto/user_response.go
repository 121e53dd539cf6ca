package dto

import "auth_backend/internal/feature/users/domain/entity"

// UserRes is the public view of a user. It never carries the password.
type UserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// ErrorRes is the body of every non-2xx response.
type ErrorRes struct {
	Error string `json:"error"`
}

// NewUserRes converts an entity to its public view.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Email: u.Email}
}

// NewUserListRes converts a slice of entities, returning an empty (non-nil) slice for no users.
func NewUserListRes(users []*entity.User) []UserRes {
	out := make([]UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserRes(u))
	}
	return out
}
