package books

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/estantebooks/estante/pkg/errcodes"
	"github.com/estantebooks/estante/pkg/models"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.Exec(`
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE books (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			user_id TEXT REFERENCES users (id) NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			isbn TEXT,
			publisher TEXT,
			published_year INTEGER,
			pages INTEGER,
			language TEXT NOT NULL DEFAULT 'pt-BR',
			cover_url TEXT,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'to_read',
			rating INTEGER,
			notes TEXT,
			started_at TIMESTAMPTZ,
			finished_at TIMESTAMPTZ
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE UNIQUE INDEX ux_books_isbn ON books (isbn) WHERE isbn IS NOT NULL`)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *bun.DB, email string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO users (id, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		id, "Test User", email, "hashedpassword",
	)
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestService_CreateBook_Defaults(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title:  "Grande Sertão: Veredas",
		Author: "João Guimarães Rosa",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, userID, book.UserID)
	assert.Equal(t, models.StatusToRead, book.Status)
	assert.Equal(t, "pt-BR", book.Language)
	assert.Nil(t, book.ISBN)
	assert.Nil(t, book.Rating)
	assert.Nil(t, book.StartedAt)
	assert.Nil(t, book.FinishedAt)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestService_CreateBook_TrimsAndNormalizes(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title:     "  Dom Casmurro  ",
		Author:    " Machado de Assis ",
		ISBN:      strPtr("  978-8535910663  "),
		Publisher: strPtr("   "),
		Language:  strPtr(" en "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dom Casmurro", book.Title)
	assert.Equal(t, "Machado de Assis", book.Author)
	require.NotNil(t, book.ISBN)
	assert.Equal(t, "978-8535910663", *book.ISBN)
	// Whitespace-only optional fields are stored as absent.
	assert.Nil(t, book.Publisher)
	assert.Equal(t, "en", book.Language)
}

func TestService_CreateBook_Validation(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	tests := []struct {
		desc    string
		params  CreateBookParams
		message string
	}{
		{
			"missing title",
			CreateBookParams{Title: "   ", Author: "Someone"},
			"Title and author are required",
		},
		{
			"missing author",
			CreateBookParams{Title: "Something", Author: ""},
			"Title and author are required",
		},
		{
			"future year",
			CreateBookParams{Title: "T", Author: "A", PublishedYear: intPtr(time.Now().Year() + 1)},
			"Published year cannot be in the future",
		},
		{
			"negative pages",
			CreateBookParams{Title: "T", Author: "A", Pages: intPtr(-1)},
			"Pages must be a non-negative number",
		},
		{
			"rating too low",
			CreateBookParams{Title: "T", Author: "A", Rating: intPtr(0)},
			"Rating must be between 1 and 5",
		},
		{
			"rating too high",
			CreateBookParams{Title: "T", Author: "A", Rating: intPtr(6)},
			"Rating must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := svc.CreateBook(ctx, userID, tt.params)
			require.Error(t, err)

			var errResp *errcodes.Error
			require.ErrorAs(t, err, &errResp)
			assert.Equal(t, 400, errResp.HTTPCode)
			assert.Equal(t, tt.message, errResp.Message)
		})
	}
}

func TestService_CreateBook_ISBNConflictAcrossUsers(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	firstUser := createTestUser(t, db, "first@example.com")
	secondUser := createTestUser(t, db, "second@example.com")

	_, err := svc.CreateBook(ctx, firstUser, CreateBookParams{
		Title:  "Dom Casmurro",
		Author: "Machado de Assis",
		ISBN:   strPtr("978-8535910663"),
	})
	require.NoError(t, err)

	// Uniqueness is global, not per user.
	_, err = svc.CreateBook(ctx, secondUser, CreateBookParams{
		Title:  "Dom Casmurro",
		Author: "Machado de Assis",
		ISBN:   strPtr("978-8535910663"),
	})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 409, errResp.HTTPCode)
	assert.Equal(t, "ISBN already registered", errResp.Message)
}

func TestService_RetrieveBook_Ownership(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	book, err := svc.CreateBook(ctx, owner, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)

	got, err := svc.RetrieveBook(ctx, owner, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, got.ID)

	// Someone else's book is reported as missing, not forbidden.
	_, err = svc.RetrieveBook(ctx, stranger, book.ID)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 404, errResp.HTTPCode)
	assert.Equal(t, "Book not found", errResp.Message)
}

func TestService_ListBooks_FiltersAndSearch(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")
	otherID := createTestUser(t, db, "other@example.com")

	seed := []CreateBookParams{
		{Title: "Dom Casmurro", Author: "Machado de Assis", Rating: intPtr(5), PublishedYear: intPtr(1899)},
		{Title: "Memórias Póstumas", Author: "Machado de Assis", Rating: intPtr(4)},
		{Title: "Grande Sertão", Author: "Guimarães Rosa", Rating: intPtr(5)},
		{Title: "A Hora da Estrela", Author: "Clarice Lispector"},
	}
	for _, params := range seed {
		_, err := svc.CreateBook(ctx, userID, params)
		require.NoError(t, err)
	}
	// Another user's book must never leak into results.
	_, err := svc.CreateBook(ctx, otherID, CreateBookParams{Title: "Dom Casmurro Anotado", Author: "Machado de Assis"})
	require.NoError(t, err)

	t.Run("owner scoping", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, books, 4)
	})

	t.Run("author substring is case-insensitive", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{Author: strPtr("machado")})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, b := range books {
			assert.Equal(t, "Machado de Assis", b.Author)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		_, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{
			Author: strPtr("machado"),
			Rating: intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("search matches title or author", func(t *testing.T) {
		_, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{Search: strPtr("estrela")})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, total, err = svc.ListBooks(ctx, userID, ListBooksOptions{Search: strPtr("MACHADO")})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("search combines with other filters", func(t *testing.T) {
		_, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{
			Search: strPtr("machado"),
			Rating: intPtr(4),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("published year", func(t *testing.T) {
		_, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{PublishedYear: intPtr(1899)})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("no matches", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{Search: strPtr("tolstoy")})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, books)
	})
}

func TestService_ListBooks_StatusFilter(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	first, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: "One", Author: "A"})
	require.NoError(t, err)
	_, err = svc.CreateBook(ctx, userID, CreateBookParams{Title: "Two", Author: "B"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, userID, first.ID, models.StatusReading)
	require.NoError(t, err)

	status := models.StatusReading
	books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Equal(t, first.ID, books[0].ID)
}

func TestService_ListBooks_SortAndPagination(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	titles := []string{"Charlie", "Alpha", "Echo", "Bravo", "Delta"}
	for i, title := range titles {
		book, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: title, Author: "A"})
		require.NoError(t, err)

		// Spread creation times so the default ordering is deterministic.
		createdAt := time.Date(2025, 8, 1, 12, 0, i, 0, time.UTC)
		_, err = db.Exec(`UPDATE books SET created_at = ? WHERE id = ?`, createdAt, book.ID)
		require.NoError(t, err)
	}

	t.Run("default order is newest first", func(t *testing.T) {
		books, _, err := svc.ListBooks(ctx, userID, ListBooksOptions{})
		require.NoError(t, err)
		require.Len(t, books, 5)
		assert.Equal(t, "Delta", books[0].Title)
		assert.Equal(t, "Charlie", books[4].Title)
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		books, _, err := svc.ListBooks(ctx, userID, ListBooksOptions{SortBy: strPtr("title")})
		require.NoError(t, err)
		require.Len(t, books, 5)
		assert.Equal(t, "Alpha", books[0].Title)
		assert.Equal(t, "Echo", books[4].Title)
	})

	t.Run("sort by title descending", func(t *testing.T) {
		books, _, err := svc.ListBooks(ctx, userID, ListBooksOptions{
			SortBy:    strPtr("title"),
			SortOrder: strPtr("DESC"),
		})
		require.NoError(t, err)
		require.Len(t, books, 5)
		assert.Equal(t, "Echo", books[0].Title)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, _, err := svc.ListBooks(ctx, userID, ListBooksOptions{SortBy: strPtr("passwordHash")})
		require.Error(t, err)

		var errResp *errcodes.Error
		require.ErrorAs(t, err, &errResp)
		assert.Equal(t, 400, errResp.HTTPCode)
	})

	t.Run("pagination", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{
			SortBy: strPtr("title"),
			Page:   2,
			Limit:  2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, books, 2)
		assert.Equal(t, "Charlie", books[0].Title)
		assert.Equal(t, "Delta", books[1].Title)
	})

	t.Run("page past the end", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, userID, ListBooksOptions{Page: 4, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, books)
	})
}

func TestService_UpdateBook_Partial(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title:  "Dom Casmurro",
		Author: "Machado de Assis",
		ISBN:   strPtr("978-8535910663"),
		Rating: intPtr(4),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBook(ctx, userID, book.ID, UpdateBookParams{
		Rating: intPtr(5),
		Notes:  strPtr("Reread it."),
	})
	require.NoError(t, err)

	// Only the supplied fields change.
	assert.Equal(t, "Dom Casmurro", updated.Title)
	require.NotNil(t, updated.ISBN)
	assert.Equal(t, "978-8535910663", *updated.ISBN)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 5, *updated.Rating)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "Reread it.", *updated.Notes)

	fetched, err := svc.RetrieveBook(ctx, userID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, *fetched.Rating)
}

func TestService_UpdateBook_ISBN(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	first, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title: "First", Author: "A", ISBN: strPtr("1111111111"),
	})
	require.NoError(t, err)
	second, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title: "Second", Author: "B", ISBN: strPtr("2222222222"),
	})
	require.NoError(t, err)

	// Resubmitting the book's own ISBN never conflicts.
	_, err = svc.UpdateBook(ctx, userID, first.ID, UpdateBookParams{ISBN: strPtr("1111111111")})
	require.NoError(t, err)

	// Taking another book's ISBN does.
	_, err = svc.UpdateBook(ctx, userID, first.ID, UpdateBookParams{ISBN: strPtr("2222222222")})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 409, errResp.HTTPCode)

	// Clearing the ISBN frees it for someone else.
	_, err = svc.UpdateBook(ctx, userID, second.ID, UpdateBookParams{ISBN: strPtr("")})
	require.NoError(t, err)

	updated, err := svc.UpdateBook(ctx, userID, first.ID, UpdateBookParams{ISBN: strPtr("2222222222")})
	require.NoError(t, err)
	require.NotNil(t, updated.ISBN)
	assert.Equal(t, "2222222222", *updated.ISBN)
}

func TestService_UpdateBook_Validation(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)

	for desc, params := range map[string]UpdateBookParams{
		"blank title":   {Title: strPtr("   ")},
		"blank author":  {Author: strPtr("")},
		"future year":   {PublishedYear: intPtr(time.Now().Year() + 10)},
		"bad rating":    {Rating: intPtr(9)},
		"negative page": {Pages: intPtr(-5)},
	} {
		t.Run(desc, func(t *testing.T) {
			_, err := svc.UpdateBook(ctx, userID, book.ID, params)
			require.Error(t, err)

			var errResp *errcodes.Error
			require.ErrorAs(t, err, &errResp)
			assert.Equal(t, 400, errResp.HTTPCode)
		})
	}
}

func TestService_UpdateBook_Ownership(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	book, err := svc.CreateBook(ctx, owner, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)

	_, err = svc.UpdateBook(ctx, stranger, book.ID, UpdateBookParams{Title: strPtr("Hijacked")})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 404, errResp.HTTPCode)
}

func TestService_UpdateStatus_Lifecycle(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)
	require.Nil(t, book.StartedAt)
	require.Nil(t, book.FinishedAt)

	// First transition to reading stamps startedAt.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusReading)
	require.NoError(t, err)
	require.NotNil(t, book.StartedAt)
	startedAt := *book.StartedAt

	// First transition to read stamps finishedAt and keeps startedAt.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusRead)
	require.NoError(t, err)
	require.NotNil(t, book.FinishedAt)
	require.NotNil(t, book.StartedAt)
	assert.Equal(t, startedAt.Unix(), book.StartedAt.Unix())
	finishedAt := *book.FinishedAt

	// Moving backwards never clears either timestamp.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusToRead)
	require.NoError(t, err)
	assert.Equal(t, models.StatusToRead, book.Status)
	require.NotNil(t, book.StartedAt)
	require.NotNil(t, book.FinishedAt)

	// Re-entering a state never overwrites the original stamp.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusReading)
	require.NoError(t, err)
	assert.Equal(t, startedAt.Unix(), book.StartedAt.Unix())

	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, finishedAt.Unix(), book.FinishedAt.Unix())
}

func TestService_UpdateStatus_ReadingAfterDirectRead(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)

	// Skipping straight to read stamps finishedAt and leaves startedAt unset.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusRead)
	require.NoError(t, err)
	require.NotNil(t, book.FinishedAt)
	require.Nil(t, book.StartedAt)
	finishedAt := *book.FinishedAt

	// Moving to reading afterwards must still work: it stamps startedAt and
	// keeps the earlier finishedAt untouched.
	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusReading)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReading, book.Status)
	require.NotNil(t, book.StartedAt)
	require.NotNil(t, book.FinishedAt)
	assert.Equal(t, finishedAt.Unix(), book.FinishedAt.Unix())
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{Title: "T", Author: "A"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, userID, book.ID, models.BookStatus("finished"))
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 400, errResp.HTTPCode)
	assert.Equal(t, "Invalid status", errResp.Message)
}

func TestService_FullLifecycle(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title:  "Clean Code",
		Author: "Robert C. Martin",
		ISBN:   strPtr("9780132350884"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusToRead, book.Status)

	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusReading)
	require.NoError(t, err)
	require.NotNil(t, book.StartedAt)

	book, err = svc.UpdateStatus(ctx, userID, book.ID, models.StatusRead)
	require.NoError(t, err)
	require.NotNil(t, book.FinishedAt)
	assert.False(t, book.FinishedAt.Before(*book.StartedAt))

	require.NoError(t, svc.DeleteBook(ctx, userID, book.ID))

	_, err = svc.RetrieveBook(ctx, userID, book.ID)
	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 404, errResp.HTTPCode)

	_, err = svc.CreateBook(ctx, userID, CreateBookParams{
		Title:  "Clean Code",
		Author: "Robert C. Martin",
		ISBN:   strPtr("9780132350884"),
	})
	require.NoError(t, err)
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()
	userID := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")

	book, err := svc.CreateBook(ctx, userID, CreateBookParams{
		Title: "T", Author: "A", ISBN: strPtr("3333333333"),
	})
	require.NoError(t, err)

	// A stranger deleting it hits not-found, and the book survives.
	err = svc.DeleteBook(ctx, stranger, book.ID)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, 404, errResp.HTTPCode)

	require.NoError(t, svc.DeleteBook(ctx, userID, book.ID))

	_, err = svc.RetrieveBook(ctx, userID, book.ID)
	require.Error(t, err)

	// Deletion frees the ISBN for reuse.
	_, err = svc.CreateBook(ctx, userID, CreateBookParams{
		Title: "T2", Author: "A2", ISBN: strPtr("3333333333"),
	})
	require.NoError(t, err)
}
