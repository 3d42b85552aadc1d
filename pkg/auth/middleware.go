package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/estantebooks/estante/pkg/errcodes"
	"github.com/estantebooks/estante/pkg/models"
)

// Context keys for storing user data on the echo context.
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "user"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Authenticate extracts and validates the bearer token from the
// Authorization header. If valid, it verifies the user still exists and adds
// user info to the context. Otherwise it returns 401.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errcodes.Unauthorized("Token not provided")
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return errcodes.Unauthorized("Malformed token")
		}

		claims, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token")
		}

		user, err := m.authService.GetUserByID(ctx, claims.UserID)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired token")
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// UserIDFromContext retrieves the authenticated user's ID from the echo
// context. The second return is false when the request is unauthenticated.
func UserIDFromContext(c echo.Context) (string, bool) {
	userID, ok := c.Get(ContextKeyUserID).(string)
	return userID, ok
}

// UserFromContext retrieves the authenticated user from the echo context.
func UserFromContext(c echo.Context) *models.User {
	user, _ := c.Get(ContextKeyUser).(*models.User)
	return user
}
