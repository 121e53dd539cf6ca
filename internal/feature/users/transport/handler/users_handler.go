package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/transport/http/dto"
)

// UsersUsecase defines the read operations used by UsersHandler.
type UsersUsecase interface {
	Find(ctx context.Context, email string) ([]*entity.User, error)
	FindOne(ctx context.Context, id uint) (*entity.User, error)
}

// UsersHandler serves user lookups.
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler creates a new instance of UsersHandler.
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid id"})
		return
	}

	user, err := h.users.FindOne(c.Request.Context(), uint(id))
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("user lookup failed", "error", err, "user_id", id)
		}
		c.JSON(status, dto.ErrorRes{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// List handles GET /users?email=.
func (h *UsersHandler) List(c *gin.Context) {
	var q dto.FindUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	users, err := h.users.Find(c.Request.Context(), q.Email)
	if err != nil {
		slog.Error("user search failed", "error", err, "email", q.Email)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListRes(users))
}
