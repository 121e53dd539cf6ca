package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	"auth_backend/internal/config"
	usershandler "auth_backend/internal/feature/users/transport/handler"
	"auth_backend/internal/feature/users/usecase"
	platformdb "auth_backend/internal/platform/db"
	platformhandler "auth_backend/internal/platform/http/handler"
	"auth_backend/internal/platform/password"
	platformredis "auth_backend/internal/platform/redis"
)

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// db
	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(context.Background(), platformredis.LoadConfigFromEnv()); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(db, rdb, cfg.UserCacheTTL)

	// Usecase
	usersUC := usecase.NewUsersUsecase(userRepo)
	authUC := usecase.NewAuthUsecase(usersUC, password.NewScryptHasher())

	// Handler
	healthH := platformhandler.NewHealthHandler(sqlDB)
	authH := usershandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)

	r := router.NewRouter(healthH, authH, usersH, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown error", "error", err)
	}
}
