package books

import (
	"github.com/estantebooks/estante/pkg/models"
)

type CreateBookPayload struct {
	Title         string  `json:"title" mod:"trim" validate:"required,max=255"`
	Author        string  `json:"author" mod:"trim" validate:"required,max=255"`
	ISBN          *string `json:"isbn,omitempty" mod:"trim" validate:"omitempty,max=20"`
	Publisher     *string `json:"publisher,omitempty" mod:"trim" validate:"omitempty,max=255"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	Pages         *int    `json:"pages,omitempty" validate:"omitempty,min=0"`
	Language      *string `json:"language,omitempty" mod:"trim" validate:"omitempty,max=10"`
	CoverURL      *string `json:"coverUrl,omitempty" mod:"trim" validate:"omitempty,max=500"`
	Description   *string `json:"description,omitempty" mod:"trim"`
	Rating        *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes         *string `json:"notes,omitempty" mod:"trim"`
}

type UpdateBookPayload struct {
	Title         *string `json:"title,omitempty" mod:"trim" validate:"omitempty,max=255"`
	Author        *string `json:"author,omitempty" mod:"trim" validate:"omitempty,max=255"`
	ISBN          *string `json:"isbn,omitempty" mod:"trim" validate:"omitempty,max=20"`
	Publisher     *string `json:"publisher,omitempty" mod:"trim" validate:"omitempty,max=255"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	Pages         *int    `json:"pages,omitempty" validate:"omitempty,min=0"`
	Language      *string `json:"language,omitempty" mod:"trim" validate:"omitempty,max=10"`
	CoverURL      *string `json:"coverUrl,omitempty" mod:"trim" validate:"omitempty,max=500"`
	Description   *string `json:"description,omitempty" mod:"trim"`
	Rating        *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes         *string `json:"notes,omitempty" mod:"trim"`
}

type UpdateStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=to_read reading read"`
}

type ListBooksQuery struct {
	Status        *string `json:"status,omitempty" query:"status" validate:"omitempty,oneof=to_read reading read"`
	Rating        *int    `json:"rating,omitempty" query:"rating" validate:"omitempty,min=1,max=5"`
	Author        *string `json:"author,omitempty" query:"author" validate:"omitempty,max=255"`
	Title         *string `json:"title,omitempty" query:"title" validate:"omitempty,max=255"`
	PublishedYear *int    `json:"publishedYear,omitempty" query:"publishedYear"`
	Search        *string `json:"search,omitempty" query:"search" validate:"omitempty,max=255"`
	Page          int     `json:"page,omitempty" query:"page" default:"1" validate:"min=1"`
	Limit         int     `json:"limit,omitempty" query:"limit" default:"10" validate:"min=1,max=100"`
	SortBy        *string `json:"sortBy,omitempty" query:"sortBy"`
	SortOrder     *string `json:"sortOrder,omitempty" query:"sortOrder" validate:"omitempty,oneof=ASC DESC asc desc"`
}

// Pagination is the page envelope returned alongside the book list.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type BookResponse struct {
	Message string       `json:"message,omitempty"`
	Book    *models.Book `json:"book"`
}

type BookListResponse struct {
	Books      []*models.Book `json:"books"`
	Pagination Pagination     `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
