package postgres

import (
	"context"
	"fmt"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/pkg/database"
)

// StatsRepository implements repository.StatsRepository using PostgreSQL.
type StatsRepository struct {
	db database.DBTX
}

// NewStatsRepository creates a new PostgreSQL-backed statistics repository.
func NewStatsRepository(db database.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStatistics returns site-wide aggregate numbers in a single query.
// The mean only covers active hustles with at least one review; the CASE
// makes AVG skip zero-review hustles instead of dragging the mean down.
func (r *StatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE is_active),
			(SELECT count(*) FROM reviews),
			COALESCE(ROUND(AVG(CASE WHEN review_count > 0 THEN average_score END) FILTER (WHERE is_active), 1), 0),
			count(*) FILTER (WHERE is_active AND created_at > now() - interval '7 days')
		FROM hustles`

	var stats domain.Statistics
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalHustles,
		&stats.TotalReviews,
		&stats.AverageScore,
		&stats.NewThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	return &stats, nil
}

// GetCategoryAverages returns one row per category, including categories with
// no hustles, ordered by average score descending with nulls last.
func (r *StatsRepository) GetCategoryAverages(ctx context.Context) ([]domain.CategoryAverage, error) {
	query := `
		SELECT c.id, c.name, c.description, c.slug, c.created_at,
			ROUND(AVG(CASE WHEN h.review_count > 0 THEN h.average_score END), 1) AS avg_score,
			count(h.id) AS hustle_count
		FROM categories c
		LEFT JOIN hustles h ON h.category_id = c.id AND h.is_active = TRUE
		GROUP BY c.id, c.name, c.description, c.slug, c.created_at
		ORDER BY avg_score DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get category averages: %w", err)
	}
	defer rows.Close()

	var averages []domain.CategoryAverage
	for rows.Next() {
		var ca domain.CategoryAverage
		if err := rows.Scan(
			&ca.Category.ID,
			&ca.Category.Name,
			&ca.Category.Description,
			&ca.Category.Slug,
			&ca.Category.CreatedAt,
			&ca.AverageScore,
			&ca.HustleCount,
		); err != nil {
			return nil, fmt.Errorf("scan category average row: %w", err)
		}
		averages = append(averages, ca)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category average rows: %w", err)
	}

	if averages == nil {
		averages = []domain.CategoryAverage{}
	}

	return averages, nil
}
