package domain

import (
	"time"
)

// Score bounds shared by the overall score and all sub-scores.
const (
	MinScore = 1.0
	MaxScore = 10.0
)

// Review is a community review of a hustle, attributed to a source platform.
// Reviews are immutable after insert.
type Review struct {
	ID               string    `json:"id"`
	HustleID         string    `json:"hustle_id"`
	Username         string    `json:"username"`
	Email            *string   `json:"email,omitempty"`
	SourcePlatform   string    `json:"source_platform"`
	SourceDate       string    `json:"source_date"`
	SourceVerified   bool      `json:"source_verified"`
	OverallScore     float64   `json:"overall_score"`
	EarningPotential *float64  `json:"earning_potential,omitempty"`
	TimeInvestment   *float64  `json:"time_investment,omitempty"`
	Difficulty       *float64  `json:"difficulty,omitempty"`
	Legitimacy       *float64  `json:"legitimacy,omitempty"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Pros             []string  `json:"pros"`
	Cons             []string  `json:"cons"`
	MonthlyEarnings  *int      `json:"monthly_earnings,omitempty"`
	TimeSpentHours   *int      `json:"time_spent_hours,omitempty"`
	ExperienceMonths *int      `json:"experience_months,omitempty"`
	IsVerified       bool      `json:"is_verified"`
	IsAnonymous      bool      `json:"is_anonymous"`
	HelpfulCount     int       `json:"helpful_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsValidScore checks whether a score is within the 1.0 to 10.0 range.
func IsValidScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}
