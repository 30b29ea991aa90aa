package postgres

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/pkg/database"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

var now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

var categoryColumns = []string{"id", "name", "description", "slug", "created_at"}

func sampleCategory() domain.Category {
	return domain.Category{
		ID:          "cat-1",
		Name:        "Delivery",
		Description: strPtr("Food and package delivery gigs"),
		Slug:        "delivery",
		CreatedAt:   now,
	}
}

func categoryRow(c domain.Category) []any {
	return []any{c.ID, c.Name, c.Description, c.Slug, c.CreatedAt}
}

var hustleJoinedColumns = []string{
	"id", "name", "description", "category_id", "average_score", "review_count",
	"hourly_rate_min", "hourly_rate_max", "time_commitment", "difficulty_level",
	"tags", "requirements", "is_active", "created_at", "updated_at",
	"c_id", "c_name", "c_description", "c_slug", "c_created_at",
}

var hustleJoinedColumnsWithCount = append(append([]string{}, hustleJoinedColumns...), "total_count")

func sampleHustle() domain.HustleWithCategory {
	cat := sampleCategory()
	return domain.HustleWithCategory{
		Hustle: domain.Hustle{
			ID:              "hustle-1",
			Name:            "Food Delivery",
			Description:     "Deliver meals around town",
			CategoryID:      strPtr(cat.ID),
			AverageScore:    7.5,
			ReviewCount:     4,
			HourlyRateMin:   intPtr(15),
			HourlyRateMax:   intPtr(25),
			TimeCommitment:  strPtr("flexible"),
			DifficultyLevel: intPtr(2),
			Tags:            []string{"driving", "flexible"},
			Requirements:    []string{"car", "license"},
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		Category: &cat,
	}
}

func hustleJoinedRow(h domain.HustleWithCategory) []any {
	row := []any{
		h.ID, h.Name, h.Description, h.CategoryID, h.AverageScore, h.ReviewCount,
		h.HourlyRateMin, h.HourlyRateMax, h.TimeCommitment, h.DifficultyLevel,
		h.Tags, h.Requirements, h.IsActive, h.CreatedAt, h.UpdatedAt,
	}
	// Category columns are scanned into pointer locals, so the fixture has
	// to hand pgxmock pointer values.
	if h.Category != nil {
		row = append(row, strPtr(h.Category.ID), strPtr(h.Category.Name), h.Category.Description, strPtr(h.Category.Slug), timePtr(h.Category.CreatedAt))
	} else {
		row = append(row, nil, nil, nil, nil, nil)
	}
	return row
}

var reviewColumns = []string{
	"id", "hustle_id", "username", "email", "source_platform", "source_date",
	"source_verified", "overall_score", "earning_potential", "time_investment",
	"difficulty", "legitimacy", "title", "content", "pros", "cons",
	"monthly_earnings", "time_spent_hours", "experience_months",
	"is_verified", "is_anonymous", "helpful_count", "created_at",
}

func sampleReview() domain.Review {
	return domain.Review{
		ID:               "review-1",
		HustleID:         "hustle-1",
		Username:         "gigworker42",
		Email:            strPtr("gigworker42@example.com"),
		SourcePlatform:   "reddit",
		SourceDate:       "2026-08-01",
		SourceVerified:   true,
		OverallScore:     8.0,
		EarningPotential: floatPtr(7.0),
		TimeInvestment:   floatPtr(6.5),
		Difficulty:       floatPtr(3.0),
		Legitimacy:       floatPtr(9.0),
		Title:            "Solid side income",
		Content:          "Steady demand on weekends, slow on weekdays.",
		Pros:             []string{"flexible hours"},
		Cons:             []string{"fuel costs"},
		MonthlyEarnings:  intPtr(800),
		TimeSpentHours:   intPtr(20),
		ExperienceMonths: intPtr(6),
		IsVerified:       true,
		IsAnonymous:      false,
		HelpfulCount:     0,
		CreatedAt:        now,
	}
}

func reviewRow(r domain.Review) []any {
	return []any{
		r.ID, r.HustleID, r.Username, r.Email, r.SourcePlatform, r.SourceDate,
		r.SourceVerified, r.OverallScore, r.EarningPotential, r.TimeInvestment,
		r.Difficulty, r.Legitimacy, r.Title, r.Content, r.Pros, r.Cons,
		r.MonthlyEarnings, r.TimeSpentHours, r.ExperienceMonths,
		r.IsVerified, r.IsAnonymous, r.HelpfulCount, r.CreatedAt,
	}
}

func reviewArgs(r domain.Review) []any {
	return []any{
		r.ID, r.HustleID, r.Username, r.Email, r.SourcePlatform, r.SourceDate,
		r.SourceVerified, r.OverallScore, r.EarningPotential, r.TimeInvestment,
		r.Difficulty, r.Legitimacy, r.Title, r.Content, r.Pros, r.Cons,
		r.MonthlyEarnings, r.TimeSpentHours, r.ExperienceMonths,
		r.IsVerified, r.IsAnonymous, r.HelpfulCount, r.CreatedAt,
	}
}
