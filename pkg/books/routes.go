package books

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes mounts the book endpoints on g, which is expected to be an
// authenticated route group.
func RegisterRoutes(g *echo.Group, db *bun.DB) *Service {
	bookService := NewService(db)

	h := &handler{bookService}

	g.POST("", h.createBook)
	g.GET("", h.listBooks)
	g.GET("/:id", h.retrieveBook)
	g.PUT("/:id", h.updateBook)
	g.PATCH("/:id/status", h.updateStatus)
	g.DELETE("/:id", h.deleteBook)

	return bookService
}
