// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /auth/signup endpoint.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SigninReq represents the request body for the /auth/signin endpoint.
type SigninReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FindUsersQuery binds the query string of GET /users.
type FindUsersQuery struct {
	Email string `form:"email" binding:"required"`
}
