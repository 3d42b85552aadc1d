package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BookStatus is the reading-progress state of a book.
type BookStatus string

const (
	StatusToRead  BookStatus = "to_read"
	StatusReading BookStatus = "reading"
	StatusRead    BookStatus = "read"
)

// Valid reports whether s is one of the known statuses.
func (s BookStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// DefaultLanguage is assigned to books created without a language.
const DefaultLanguage = "pt-BR"

// Book is a record in a user's personal collection. Optional fields are
// pointers; an empty optional string is stored as NULL, not "".
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID            string     `bun:",pk,nullzero" json:"id"`
	UserID        string     `bun:",nullzero" json:"userId"`
	Title         string     `bun:",nullzero" json:"title"`
	Author        string     `bun:",nullzero" json:"author"`
	ISBN          *string    `bun:"isbn" json:"isbn,omitempty"`
	Publisher     *string    `json:"publisher,omitempty"`
	PublishedYear *int       `json:"publishedYear,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	Language      string     `bun:",nullzero" json:"language"`
	CoverURL      *string    `bun:"cover_url" json:"coverUrl,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        BookStatus `bun:",nullzero" json:"status"`
	Rating        *int       `json:"rating,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	StartedAt     *time.Time `json:"startedAt"`
	FinishedAt    *time.Time `json:"finishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"-"`
}
