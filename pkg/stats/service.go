package stats

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/estantebooks/estante/pkg/models"
)

// StatusCounts breaks a collection down by reading status.
type StatusCounts struct {
	ToRead  int `json:"toRead"`
	Reading int `json:"reading"`
	Read    int `json:"read"`
}

// Stats summarizes one user's collection. AverageRating only considers rated
// books and is rounded to two decimal places; it is zero when no book has a
// rating.
type Stats struct {
	Total           int          `json:"total"`
	ByStatus        StatusCounts `json:"byStatus"`
	AverageRating   float64      `json:"averageRating"`
	TotalPages      int          `json:"totalPages"`
	BooksWithRating int          `json:"booksWithRating"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CollectionStats aggregates over every book the user owns.
func (svc *Service) CollectionStats(ctx context.Context, userID string) (*Stats, error) {
	books := []*models.Book{}

	err := svc.db.NewSelect().
		Model(&books).
		Where("b.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats := &Stats{Total: len(books)}

	ratingSum := 0
	for _, book := range books {
		switch book.Status {
		case models.StatusToRead:
			stats.ByStatus.ToRead++
		case models.StatusReading:
			stats.ByStatus.Reading++
		case models.StatusRead:
			stats.ByStatus.Read++
		}

		if book.Rating != nil {
			stats.BooksWithRating++
			ratingSum += *book.Rating
		}
		if book.Pages != nil {
			stats.TotalPages += *book.Pages
		}
	}

	if stats.BooksWithRating > 0 {
		avg := float64(ratingSum) / float64(stats.BooksWithRating)
		stats.AverageRating = math.Round(avg*100) / 100
	}

	return stats, nil
}
