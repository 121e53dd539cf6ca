// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"auth_backend/internal/feature/users/adapters"
	"auth_backend/internal/feature/users/usecase"
	"auth_backend/internal/platform/cache"
)

// NewUserRepository returns the GORM-backed repository, wrapped with the
// Redis cache when rdb is available.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.UserRepository {
	repo := adapters.NewUserGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
}
