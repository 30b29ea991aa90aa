package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/internal/repository"
	"github.com/Allinmicrosite/hustle-indexer/pkg/database"
	apperrors "github.com/Allinmicrosite/hustle-indexer/pkg/errors"
)

// hustleColumns is the joined select list shared by all hustle read queries.
// Category columns are nullable because the join is a LEFT JOIN.
const hustleColumns = `
	h.id, h.name, h.description, h.category_id, h.average_score, h.review_count,
	h.hourly_rate_min, h.hourly_rate_max, h.time_commitment, h.difficulty_level,
	h.tags, h.requirements, h.is_active, h.created_at, h.updated_at,
	c.id, c.name, c.description, c.slug, c.created_at`

// HustleRepository implements repository.HustleRepository using PostgreSQL.
type HustleRepository struct {
	db database.DBTX
}

// NewHustleRepository creates a new PostgreSQL-backed hustle repository.
func NewHustleRepository(db database.DBTX) *HustleRepository {
	return &HustleRepository{db: db}
}

// Create inserts a new hustle into the database.
func (r *HustleRepository) Create(ctx context.Context, h *domain.Hustle) error {
	query := `
		INSERT INTO hustles (id, name, description, category_id, average_score, review_count,
			hourly_rate_min, hourly_rate_max, time_commitment, difficulty_level,
			tags, requirements, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		h.ID,
		h.Name,
		h.Description,
		h.CategoryID,
		h.AverageScore,
		h.ReviewCount,
		h.HourlyRateMin,
		h.HourlyRateMax,
		h.TimeCommitment,
		h.DifficultyLevel,
		h.Tags,
		h.Requirements,
		h.IsActive,
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("category", derefOrEmpty(h.CategoryID))
		}
		return fmt.Errorf("insert hustle: %w", err)
	}

	return nil
}

// GetByID retrieves an active hustle with its category. Inactive hustles are
// reported as not found, same as absent ones.
func (r *HustleRepository) GetByID(ctx context.Context, id string) (*domain.HustleWithCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hustles h
		LEFT JOIN categories c ON h.category_id = c.id
		WHERE h.id = $1 AND h.is_active = TRUE`, hustleColumns)

	row := r.db.QueryRow(ctx, query, id)
	h, err := scanHustleRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan hustle: %w", err)
	}

	return h, nil
}

// List returns active hustles matching the filter, ordered by average score
// descending, with the total count.
func (r *HustleRepository) List(ctx context.Context, filter repository.HustleFilter) ([]domain.HustleWithCategory, int, error) {
	conditions := []string{"h.is_active = TRUE"}
	var args []any
	argIndex := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("h.category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(h.name ILIKE $%d OR h.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	// count(*) OVER() yields the total in the same query.
	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM hustles h
		LEFT JOIN categories c ON h.category_id = c.id
		WHERE %s
		ORDER BY h.average_score DESC
		LIMIT $%d OFFSET $%d`,
		hustleColumns, strings.Join(conditions, " AND "), argIndex, argIndex+1,
	)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hustles: %w", err)
	}
	defer rows.Close()

	var (
		hustles    []domain.HustleWithCategory
		totalCount int
	)

	for rows.Next() {
		h, err := scanHustleFields(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("scan hustle row: %w", err)
		}
		hustles = append(hustles, *h)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate hustle rows: %w", err)
	}

	if hustles == nil {
		hustles = []domain.HustleWithCategory{}
	}

	return hustles, totalCount, nil
}

// ListTopRated returns active hustles with at least one review, ordered by
// average score with review count as the tie-break.
func (r *HustleRepository) ListTopRated(ctx context.Context, limit int) ([]domain.HustleWithCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hustles h
		LEFT JOIN categories c ON h.category_id = c.id
		WHERE h.is_active = TRUE AND h.review_count > 0
		ORDER BY h.average_score DESC, h.review_count DESC
		LIMIT $1`, hustleColumns)

	return r.queryHustles(ctx, query, limit)
}

// ListRecent returns active hustles ordered by creation time descending.
func (r *HustleRepository) ListRecent(ctx context.Context, limit int) ([]domain.HustleWithCategory, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hustles h
		LEFT JOIN categories c ON h.category_id = c.id
		WHERE h.is_active = TRUE
		ORDER BY h.created_at DESC
		LIMIT $1`, hustleColumns)

	return r.queryHustles(ctx, query, limit)
}

// queryHustles executes a joined hustle query without a total count column.
func (r *HustleRepository) queryHustles(ctx context.Context, query string, args ...any) ([]domain.HustleWithCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hustles: %w", err)
	}
	defer rows.Close()

	var hustles []domain.HustleWithCategory
	for rows.Next() {
		h, err := scanHustleFields(rows, nil)
		if err != nil {
			return nil, fmt.Errorf("scan hustle row: %w", err)
		}
		hustles = append(hustles, *h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hustle rows: %w", err)
	}

	if hustles == nil {
		hustles = []domain.HustleWithCategory{}
	}

	return hustles, nil
}

// scanHustleRow scans a single joined row.
func scanHustleRow(row pgx.Row) (*domain.HustleWithCategory, error) {
	return scanHustleFields(row, nil)
}

// scanHustleFields scans the joined column list into a HustleWithCategory.
// When totalCount is non-nil, a trailing total_count column is scanned too.
func scanHustleFields(row pgx.Row, totalCount *int) (*domain.HustleWithCategory, error) {
	var (
		h domain.HustleWithCategory

		catID        *string
		catName      *string
		catDesc      *string
		catSlug      *string
		catCreatedAt *time.Time
	)

	if err := scan(row, totalCount,
		&h.ID, &h.Name, &h.Description, &h.CategoryID, &h.AverageScore, &h.ReviewCount,
		&h.HourlyRateMin, &h.HourlyRateMax, &h.TimeCommitment, &h.DifficultyLevel,
		&h.Tags, &h.Requirements, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
		&catID, &catName, &catDesc, &catSlug, &catCreatedAt,
	); err != nil {
		return nil, err
	}

	if catID != nil {
		h.Category = &domain.Category{
			ID:          *catID,
			Name:        *catName,
			Description: catDesc,
			Slug:        *catSlug,
			CreatedAt:   *catCreatedAt,
		}
	}

	if h.Tags == nil {
		h.Tags = []string{}
	}
	if h.Requirements == nil {
		h.Requirements = []string{}
	}

	return &h, nil
}

// scan forwards to row.Scan, appending the total_count destination when set.
func scan(row pgx.Row, totalCount *int, dest ...any) error {
	if totalCount != nil {
		dest = append(dest, totalCount)
	}
	return row.Scan(dest...)
}

// derefOrEmpty returns the pointed-to string or "".
func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
