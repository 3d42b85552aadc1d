package auth

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all auth routes and returns the service so the
// server can build the authentication middleware from it.
func RegisterRoutes(e *echo.Echo, db *bun.DB, jwtSecret string, jwtExpiry time.Duration) *Service {
	authService := NewService(db, jwtSecret, jwtExpiry)

	h := &handler{
		authService: authService,
	}

	auth := e.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)

	return authService
}
