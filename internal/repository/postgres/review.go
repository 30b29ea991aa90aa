package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/pkg/database"
	apperrors "github.com/Allinmicrosite/hustle-indexer/pkg/errors"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	db database.TxStarter
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(db database.TxStarter) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review and refreshes the owning hustle's cached aggregates
// in a single transaction. The recompute is a full scan over the hustle's
// reviews, so it converges to the correct value regardless of interleaving.
func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin review tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	insertQuery := `
		INSERT INTO reviews (id, hustle_id, username, email, source_platform, source_date,
			source_verified, overall_score, earning_potential, time_investment, difficulty,
			legitimacy, title, content, pros, cons, monthly_earnings, time_spent_hours,
			experience_months, is_verified, is_anonymous, helpful_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23)`

	_, err = tx.Exec(ctx, insertQuery,
		rev.ID,
		rev.HustleID,
		rev.Username,
		rev.Email,
		rev.SourcePlatform,
		rev.SourceDate,
		rev.SourceVerified,
		rev.OverallScore,
		rev.EarningPotential,
		rev.TimeInvestment,
		rev.Difficulty,
		rev.Legitimacy,
		rev.Title,
		rev.Content,
		rev.Pros,
		rev.Cons,
		rev.MonthlyEarnings,
		rev.TimeSpentHours,
		rev.ExperienceMonths,
		rev.IsVerified,
		rev.IsAnonymous,
		rev.HelpfulCount,
		rev.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFound("hustle", rev.HustleID)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	var (
		reviewCount  int
		averageScore float64
	)
	recomputeQuery := `
		SELECT count(*), COALESCE(ROUND(AVG(overall_score), 1), 0)
		FROM reviews
		WHERE hustle_id = $1`

	if err := tx.QueryRow(ctx, recomputeQuery, rev.HustleID).Scan(&reviewCount, &averageScore); err != nil {
		return fmt.Errorf("recompute hustle aggregates: %w", err)
	}

	updateQuery := `
		UPDATE hustles
		SET average_score = $1, review_count = $2, updated_at = $3
		WHERE id = $4`

	// Zero rows affected cannot happen after a successful FK-checked insert;
	// if it somehow does, the commit still proceeds with the review intact.
	if _, err := tx.Exec(ctx, updateQuery, averageScore, reviewCount, time.Now().UTC(), rev.HustleID); err != nil {
		return fmt.Errorf("update hustle aggregates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit review tx: %w", err)
	}

	return nil
}

// ListByHustle returns reviews for a hustle ordered by creation time descending.
func (r *ReviewRepository) ListByHustle(ctx context.Context, hustleID string, limit int) ([]domain.Review, error) {
	query := `
		SELECT id, hustle_id, username, email, source_platform, source_date, source_verified,
			overall_score, earning_potential, time_investment, difficulty, legitimacy,
			title, content, pros, cons, monthly_earnings, time_spent_hours,
			experience_months, is_verified, is_anonymous, helpful_count, created_at
		FROM reviews
		WHERE hustle_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, hustleID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(
			&rev.ID, &rev.HustleID, &rev.Username, &rev.Email, &rev.SourcePlatform,
			&rev.SourceDate, &rev.SourceVerified, &rev.OverallScore, &rev.EarningPotential,
			&rev.TimeInvestment, &rev.Difficulty, &rev.Legitimacy, &rev.Title, &rev.Content,
			&rev.Pros, &rev.Cons, &rev.MonthlyEarnings, &rev.TimeSpentHours,
			&rev.ExperienceMonths, &rev.IsVerified, &rev.IsAnonymous, &rev.HelpfulCount,
			&rev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}

		if rev.Pros == nil {
			rev.Pros = []string{}
		}
		if rev.Cons == nil {
			rev.Cons = []string{}
		}

		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}
