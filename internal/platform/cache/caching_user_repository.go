// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/feature/users/usecase"
)

// cachedUser is the Redis representation of a user.
// entity.User hides Password from JSON, so it cannot be stored directly.
type cachedUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachingUserRepository decorates a UserRepository with Redis caching of email lookups.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingUserRepository implements UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the user and drops any cached lookup for its email.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	if c.rdb == nil || u == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.emailKey(u.Email)).Err() // best effort
	return nil
}

// FindByEmail checks the cache first and falls back to the inner repository.
// Empty results are not cached so a later signup is visible immediately.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByEmail(ctx, email)
	}

	key := c.emailKey(email)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cached []cachedUser
		if err := json.Unmarshal(b, &cached); err == nil && matchesEmail(cached, email) {
			return fromCache(cached), nil
		}
		// Delete corrupted or foreign cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if b, err := json.Marshal(toCache(out)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// FindByID is not cached.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return c.inner.FindByID(ctx, id)
}

// emailKey uses the raw email; Redis keys are binary safe, so no escaping is needed.
func (c *CachingUserRepository) emailKey(email string) string {
	return fmt.Sprintf("%s:email:%s", c.namespace, email)
}

func matchesEmail(cached []cachedUser, email string) bool {
	for _, cu := range cached {
		if cu.Email != email {
			return false
		}
	}
	return true
}

func toCache(users []*entity.User) []cachedUser {
	out := make([]cachedUser, len(users))
	for i, u := range users {
		out[i] = cachedUser{
			ID:        u.ID,
			Email:     u.Email,
			Password:  u.Password,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		}
	}
	return out
}

func fromCache(cached []cachedUser) []*entity.User {
	out := make([]*entity.User, len(cached))
	for i, cu := range cached {
		out[i] = &entity.User{
			ID:        cu.ID,
			Email:     cu.Email,
			Password:  cu.Password,
			CreatedAt: cu.CreatedAt,
			UpdatedAt: cu.UpdatedAt,
		}
	}
	return out
}
