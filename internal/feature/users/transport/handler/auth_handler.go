package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/transport/http/dto"
)

// AuthUsecase defines the authentication operations used by AuthHandler.
// Following Go convention, the interface is defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	Signin(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for signup and signin.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /auth/signup.
//   - 400 on invalid body or an email already in use
//   - 201 with the created user on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := statusFor(err)
		logFailure("signup failed", status, err, req.Email, c.ClientIP())
		c.JSON(status, dto.ErrorRes{Error: msg})
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// Signin handles POST /auth/signin.
//   - 404 when the email is unknown
//   - 400 on invalid body or a wrong password
//   - 200 with the stored user on success
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	user, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := statusFor(err)
		logFailure("signin failed", status, err, req.Email, c.ClientIP())
		c.JSON(status, dto.ErrorRes{Error: msg})
		return
	}

	slog.Info("user signin successful", "user_id", user.ID, "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

func logFailure(msg string, status int, err error, email, remoteAddr string) {
	if status >= http.StatusInternalServerError {
		slog.Error(msg, "error", err, "email", email, "remote_addr", remoteAddr)
		return
	}
	slog.Warn(msg, "error", err, "email", email, "remote_addr", remoteAddr)
}
