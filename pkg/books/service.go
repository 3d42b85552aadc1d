package books

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/estantebooks/estante/pkg/errcodes"
	"github.com/estantebooks/estante/pkg/models"
)

const (
	// DefaultPage is the 1-indexed page used when none is requested.
	DefaultPage = 1
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 10
)

// sortColumns maps the field names accepted in sortBy (as they appear on the
// wire) to their database columns.
var sortColumns = map[string]string{
	"id":            "id",
	"title":         "title",
	"author":        "author",
	"isbn":          "isbn",
	"publisher":     "publisher",
	"publishedYear": "published_year",
	"pages":         "pages",
	"language":      "language",
	"status":        "status",
	"rating":        "rating",
	"startedAt":     "started_at",
	"finishedAt":    "finished_at",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// CreateBookParams carries the fields accepted when creating a book.
// Optional fields are pointers; nil means absent.
type CreateBookParams struct {
	Title         string
	Author        string
	ISBN          *string
	Publisher     *string
	PublishedYear *int
	Pages         *int
	Language      *string
	CoverURL      *string
	Description   *string
	Rating        *int
	Notes         *string
}

// UpdateBookParams carries a partial update. Only non-nil fields are
// modified; each present field is validated with the same rules as create.
type UpdateBookParams struct {
	Title         *string
	Author        *string
	ISBN          *string
	Publisher     *string
	PublishedYear *int
	Pages         *int
	Language      *string
	CoverURL      *string
	Description   *string
	Rating        *int
	Notes         *string
}

// ListBooksOptions are the filters, sort, and pagination for ListBooks. All
// filters combine with AND; Search matches title OR author.
type ListBooksOptions struct {
	Status        *models.BookStatus
	Rating        *int
	Author        *string
	Title         *string
	PublishedYear *int
	Search        *string
	Page          int
	Limit         int
	SortBy        *string
	SortOrder     *string
}

// Service implements the book validation, lifecycle, and query rules. Every
// operation is scoped to an owner: a book owned by someone else behaves
// exactly like a missing one.
type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateBook(ctx context.Context, userID string, params CreateBookParams) (*models.Book, error) {
	title := strings.TrimSpace(params.Title)
	author := strings.TrimSpace(params.Author)
	if title == "" || author == "" {
		return nil, errcodes.ValidationError("Title and author are required")
	}

	isbn := normalizeOptional(params.ISBN)
	if isbn != nil {
		if err := svc.checkISBNAvailable(ctx, *isbn, ""); err != nil {
			return nil, err
		}
	}
	if err := validatePublishedYear(params.PublishedYear); err != nil {
		return nil, err
	}
	if err := validatePages(params.Pages); err != nil {
		return nil, err
	}
	if err := validateRating(params.Rating); err != nil {
		return nil, err
	}

	language := models.DefaultLanguage
	if l := normalizeOptional(params.Language); l != nil {
		language = *l
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := time.Now()
	book := &models.Book{
		ID:            id.String(),
		UserID:        userID,
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		Publisher:     normalizeOptional(params.Publisher),
		PublishedYear: params.PublishedYear,
		Pages:         params.Pages,
		Language:      language,
		CoverURL:      normalizeOptional(params.CoverURL),
		Description:   normalizeOptional(params.Description),
		Status:        models.StatusToRead,
		Rating:        params.Rating,
		Notes:         normalizeOptional(params.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = svc.db.NewInsert().Model(book).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// RetrieveBook returns the book only when it belongs to userID. Books owned
// by other users are reported as not found.
func (svc *Service) RetrieveBook(ctx context.Context, userID, bookID string) (*models.Book, error) {
	book := &models.Book{}

	err := svc.db.NewSelect().
		Model(book).
		Where("b.id = ?", bookID).
		Where("b.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns one page of the owner's books matching opts, along with
// the total count of all matching records.
func (svc *Service) ListBooks(ctx context.Context, userID string, opts ListBooksOptions) ([]*models.Book, int, error) {
	page := opts.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	order, err := sortOrderClause(opts.SortBy, opts.SortOrder)
	if err != nil {
		return nil, 0, err
	}

	books := []*models.Book{}
	q := svc.db.NewSelect().
		Model(&books).
		Where("b.user_id = ?", userID).
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit)

	if opts.Status != nil {
		q = q.Where("b.status = ?", *opts.Status)
	}
	if opts.Rating != nil {
		q = q.Where("b.rating = ?", *opts.Rating)
	}
	if opts.Author != nil {
		q = q.Where("LOWER(b.author) LIKE ?", substringPattern(*opts.Author))
	}
	if opts.Title != nil {
		q = q.Where("LOWER(b.title) LIKE ?", substringPattern(*opts.Title))
	}
	if opts.PublishedYear != nil {
		q = q.Where("b.published_year = ?", *opts.PublishedYear)
	}
	if opts.Search != nil {
		pattern := substringPattern(*opts.Search)
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("LOWER(b.title) LIKE ?", pattern).
				WhereOr("LOWER(b.author) LIKE ?", pattern)
		})
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

func (svc *Service) UpdateBook(ctx context.Context, userID, bookID string, params UpdateBookParams) (*models.Book, error) {
	book, err := svc.RetrieveBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	columns := []string{}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, errcodes.ValidationError("Title and author are required")
		}
		book.Title = title
		columns = append(columns, "title")
	}
	if params.Author != nil {
		author := strings.TrimSpace(*params.Author)
		if author == "" {
			return nil, errcodes.ValidationError("Title and author are required")
		}
		book.Author = author
		columns = append(columns, "author")
	}
	if params.ISBN != nil {
		isbn := normalizeOptional(params.ISBN)
		// An unchanged ISBN is always allowed; only a new value competes for
		// uniqueness.
		if isbn != nil {
			if err := svc.checkISBNAvailable(ctx, *isbn, book.ID); err != nil {
				return nil, err
			}
		}
		book.ISBN = isbn
		columns = append(columns, "isbn")
	}
	if params.Publisher != nil {
		book.Publisher = normalizeOptional(params.Publisher)
		columns = append(columns, "publisher")
	}
	if params.PublishedYear != nil {
		if err := validatePublishedYear(params.PublishedYear); err != nil {
			return nil, err
		}
		book.PublishedYear = params.PublishedYear
		columns = append(columns, "published_year")
	}
	if params.Pages != nil {
		if err := validatePages(params.Pages); err != nil {
			return nil, err
		}
		book.Pages = params.Pages
		columns = append(columns, "pages")
	}
	if params.Language != nil {
		language := models.DefaultLanguage
		if l := normalizeOptional(params.Language); l != nil {
			language = *l
		}
		book.Language = language
		columns = append(columns, "language")
	}
	if params.CoverURL != nil {
		book.CoverURL = normalizeOptional(params.CoverURL)
		columns = append(columns, "cover_url")
	}
	if params.Description != nil {
		book.Description = normalizeOptional(params.Description)
		columns = append(columns, "description")
	}
	if params.Rating != nil {
		if err := validateRating(params.Rating); err != nil {
			return nil, err
		}
		book.Rating = params.Rating
		columns = append(columns, "rating")
	}
	if params.Notes != nil {
		book.Notes = normalizeOptional(params.Notes)
		columns = append(columns, "notes")
	}

	if len(columns) == 0 {
		return book, nil
	}

	book.UpdatedAt = time.Now()
	columns = append(columns, "updated_at")

	_, err = svc.db.NewUpdate().
		Model(book).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// UpdateStatus moves a book through the reading lifecycle. The first
// transition to reading stamps startedAt and the first transition to read
// stamps finishedAt; neither is ever overwritten or cleared afterwards.
func (svc *Service) UpdateStatus(ctx context.Context, userID, bookID string, status models.BookStatus) (*models.Book, error) {
	if !status.Valid() {
		return nil, errcodes.ValidationError("Invalid status")
	}

	book, err := svc.RetrieveBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	columns := []string{"status", "updated_at"}

	if status == models.StatusReading && book.StartedAt == nil {
		book.StartedAt = &now
		columns = append(columns, "started_at")
	}
	if status == models.StatusRead && book.FinishedAt == nil {
		book.FinishedAt = &now
		columns = append(columns, "finished_at")
	}

	book.Status = status
	book.UpdatedAt = now

	_, err = svc.db.NewUpdate().
		Model(book).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// DeleteBook permanently removes the record, freeing its ISBN for reuse.
func (svc *Service) DeleteBook(ctx context.Context, userID, bookID string) error {
	res, err := svc.db.NewDelete().
		Model((*models.Book)(nil)).
		Where("id = ?", bookID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return errcodes.NotFound("Book")
	}

	return nil
}

// checkISBNAvailable enforces global ISBN uniqueness across all users.
// excludeID skips the book's own row so an unchanged ISBN never conflicts.
func (svc *Service) checkISBNAvailable(ctx context.Context, isbn, excludeID string) error {
	q := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("isbn = ?", isbn)
	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}

	exists, err := q.Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return errcodes.Conflict("ISBN already registered")
	}
	return nil
}

func sortOrderClause(sortBy, sortOrder *string) (string, error) {
	if sortBy == nil {
		// Default order is by creation time, most recent first.
		return "b.created_at DESC", nil
	}

	column, ok := sortColumns[*sortBy]
	if !ok {
		return "", errcodes.ValidationError(fmt.Sprintf("Cannot sort by %q", *sortBy))
	}

	direction := "ASC"
	if sortOrder != nil && strings.EqualFold(*sortOrder, "DESC") {
		direction = "DESC"
	}

	return fmt.Sprintf("b.%s %s", column, direction), nil
}

func substringPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// normalizeOptional trims an optional string; empty after trimming means the
// value is absent and is stored as NULL.
func normalizeOptional(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func validatePublishedYear(year *int) error {
	if year != nil && *year > time.Now().Year() {
		return errcodes.ValidationError("Published year cannot be in the future")
	}
	return nil
}

func validatePages(pages *int) error {
	if pages != nil && *pages < 0 {
		return errcodes.ValidationError("Pages must be a non-negative number")
	}
	return nil
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return errcodes.ValidationError("Rating must be between 1 and 5")
	}
	return nil
}
