package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	usershandler "auth_backend/internal/feature/users/transport/handler"
	platformhandler "auth_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with every route of the service.
func NewRouter(health *platformhandler.HealthHandler, auth *usershandler.AuthHandler,
	users *usershandler.UsersHandler, corsOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(corsOrigins)))

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)

	a := r.Group("/auth")
	{
		a.POST("/signup", auth.Signup)
		a.POST("/signin", auth.Signin)
	}

	u := r.Group("/users")
	{
		u.GET("", users.List)
		u.GET("/:id", users.Get)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
