package domain

import (
	"time"
)

// Difficulty level bounds for hustles.
const (
	MinDifficultyLevel = 1
	MaxDifficultyLevel = 5
)

// Hustle represents a side-gig opportunity. AverageScore and ReviewCount are
// derived caches maintained by the aggregation engine: they always equal the
// aggregate of all reviews referencing the hustle.
type Hustle struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CategoryID      *string   `json:"category_id,omitempty"`
	AverageScore    float64   `json:"average_score"`
	ReviewCount     int       `json:"review_count"`
	HourlyRateMin   *int      `json:"hourly_rate_min,omitempty"`
	HourlyRateMax   *int      `json:"hourly_rate_max,omitempty"`
	TimeCommitment  *string   `json:"time_commitment,omitempty"`
	DifficultyLevel *int      `json:"difficulty_level,omitempty"`
	Tags            []string  `json:"tags"`
	Requirements    []string  `json:"requirements"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HustleWithCategory is a hustle joined with its category, when it has one.
type HustleWithCategory struct {
	Hustle
	Category *Category `json:"category"`
}

// HustleWithReviews adds the most recent reviews to a category-joined hustle.
// Used by the top-rated view, which previews the 2 newest reviews per hustle.
type HustleWithReviews struct {
	HustleWithCategory
	Reviews []Review `json:"reviews"`
}

// IsValidDifficulty checks whether the given level is within bounds.
func IsValidDifficulty(level int) bool {
	return level >= MinDifficultyLevel && level <= MaxDifficultyLevel
}
