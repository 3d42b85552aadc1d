package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"

	"github.com/estantebooks/estante/pkg/auth"
	"github.com/estantebooks/estante/pkg/binder"
	"github.com/estantebooks/estante/pkg/books"
	"github.com/estantebooks/estante/pkg/config"
	"github.com/estantebooks/estante/pkg/database"
	"github.com/estantebooks/estante/pkg/errcodes"
	"github.com/estantebooks/estante/pkg/health"
	"github.com/estantebooks/estante/pkg/stats"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	// In debug mode, every request's queries go through the query log hook.
	if cfg.Database.Debug {
		e.Use(queryLogging)
	}

	health.RegisterRoutes(e)

	authService := auth.RegisterRoutes(e, db, cfg.JWT.Secret, cfg.JWT.Expiry)
	authMiddleware := auth.NewMiddleware(authService)

	booksGroup := e.Group("/books")
	booksGroup.Use(authMiddleware.Authenticate)
	books.RegisterRoutes(booksGroup, db)

	statsGroup := e.Group("/stats")
	statsGroup.Use(authMiddleware.Authenticate)
	stats.RegisterRoutes(statsGroup, db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func queryLogging(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		c.SetRequest(req.WithContext(database.WithLogging(req.Context())))
		return next(c)
	}
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Route")
}
