package books

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estantebooks/estante/pkg/auth"
	"github.com/estantebooks/estante/pkg/errcodes"
	"github.com/estantebooks/estante/pkg/models"
)

type handler struct {
	bookService *Service
}

func (h *handler) createBook(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	payload := &CreateBookPayload{}
	if err := c.Bind(payload); err != nil {
		return err
	}

	book, err := h.bookService.CreateBook(c.Request().Context(), userID, CreateBookParams{
		Title:         payload.Title,
		Author:        payload.Author,
		ISBN:          payload.ISBN,
		Publisher:     payload.Publisher,
		PublishedYear: payload.PublishedYear,
		Pages:         payload.Pages,
		Language:      payload.Language,
		CoverURL:      payload.CoverURL,
		Description:   payload.Description,
		Rating:        payload.Rating,
		Notes:         payload.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &BookResponse{
		Message: "Book created successfully",
		Book:    book,
	})
}

func (h *handler) listBooks(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	query := &ListBooksQuery{}
	if err := c.Bind(query); err != nil {
		return err
	}

	opts := ListBooksOptions{
		Rating:        query.Rating,
		Author:        query.Author,
		Title:         query.Title,
		PublishedYear: query.PublishedYear,
		Search:        query.Search,
		Page:          query.Page,
		Limit:         query.Limit,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}
	if query.Status != nil {
		status := models.BookStatus(*query.Status)
		opts.Status = &status
	}

	books, total, err := h.bookService.ListBooks(c.Request().Context(), userID, opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &BookListResponse{
		Books: books,
		Pagination: Pagination{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: totalPages(total, query.Limit),
		},
	})
}

func (h *handler) retrieveBook(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	book, err := h.bookService.RetrieveBook(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &BookResponse{Book: book})
}

func (h *handler) updateBook(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	payload := &UpdateBookPayload{}
	if err := c.Bind(payload); err != nil {
		return err
	}

	book, err := h.bookService.UpdateBook(c.Request().Context(), userID, c.Param("id"), UpdateBookParams{
		Title:         payload.Title,
		Author:        payload.Author,
		ISBN:          payload.ISBN,
		Publisher:     payload.Publisher,
		PublishedYear: payload.PublishedYear,
		Pages:         payload.Pages,
		Language:      payload.Language,
		CoverURL:      payload.CoverURL,
		Description:   payload.Description,
		Rating:        payload.Rating,
		Notes:         payload.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &BookResponse{
		Message: "Book updated successfully",
		Book:    book,
	})
}

func (h *handler) updateStatus(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	payload := &UpdateStatusPayload{}
	if err := c.Bind(payload); err != nil {
		return err
	}

	book, err := h.bookService.UpdateStatus(c.Request().Context(), userID, c.Param("id"), models.BookStatus(payload.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &BookResponse{
		Message: "Status updated successfully",
		Book:    book,
	})
}

func (h *handler) deleteBook(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	err := h.bookService.DeleteBook(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "Book removed successfully"})
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
