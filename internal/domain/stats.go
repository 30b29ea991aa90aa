package domain

// Statistics holds site-wide aggregate numbers. AverageScore is the mean of
// average_score over active hustles that have at least one review; hustles
// with zero reviews are excluded from the mean, not counted as zero.
type Statistics struct {
	TotalHustles int     `json:"total_hustles"`
	TotalReviews int     `json:"total_reviews"`
	AverageScore float64 `json:"average_score"`
	NewThisWeek  int     `json:"new_this_week"`
}

// CategoryAverage is one row of the per-category breakdown. AverageScore is
// nil when the category has no active reviewed hustles.
type CategoryAverage struct {
	Category     Category `json:"category"`
	AverageScore *float64 `json:"average_score"`
	HustleCount  int      `json:"hustle_count"`
}
