package stats

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes mounts the stats endpoint on g, which is expected to be an
// authenticated route group.
func RegisterRoutes(g *echo.Group, db *bun.DB) *Service {
	statsService := NewService(db)

	h := &handler{statsService}

	g.GET("", h.collectionStats)

	return statsService
}
