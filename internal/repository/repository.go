package repository

import (
	"context"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
)

// HustleFilter defines criteria for listing hustles. All read paths are
// scoped to active hustles; the filter only narrows further.
type HustleFilter struct {
	CategoryID *string
	Search     *string
	Limit      int
	Offset     int
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create inserts a new category.
	Create(ctx context.Context, category *domain.Category) error

	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)

	// GetBySlug retrieves a category by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// HustleRepository defines persistence operations for hustles.
type HustleRepository interface {
	// Create inserts a new hustle.
	Create(ctx context.Context, hustle *domain.Hustle) error

	// GetByID retrieves an active hustle with its category.
	GetByID(ctx context.Context, id string) (*domain.HustleWithCategory, error)

	// List returns active hustles matching the filter, ordered by average
	// score descending, along with the total count.
	List(ctx context.Context, filter HustleFilter) ([]domain.HustleWithCategory, int, error)

	// ListTopRated returns active hustles with at least one review, ordered
	// by (average_score desc, review_count desc).
	ListTopRated(ctx context.Context, limit int) ([]domain.HustleWithCategory, error)

	// ListRecent returns active hustles ordered by created_at descending.
	ListRecent(ctx context.Context, limit int) ([]domain.HustleWithCategory, error)
}

// ReviewRepository defines persistence operations for reviews and the
// aggregate scores derived from them.
type ReviewRepository interface {
	// Create inserts a review and refreshes the owning hustle's cached
	// average_score and review_count in a single transaction.
	Create(ctx context.Context, review *domain.Review) error

	// ListByHustle returns reviews for a hustle ordered by created_at
	// descending.
	ListByHustle(ctx context.Context, hustleID string, limit int) ([]domain.Review, error)
}

// StatsRepository defines the read-only statistics queries.
type StatsRepository interface {
	// GetStatistics returns site-wide aggregate numbers.
	GetStatistics(ctx context.Context) (*domain.Statistics, error)

	// GetCategoryAverages returns one row per category, including categories
	// with no hustles, ordered by average score descending with nulls last.
	GetCategoryAverages(ctx context.Context) ([]domain.CategoryAverage, error)
}
