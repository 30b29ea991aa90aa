package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/internal/event"
	"github.com/Allinmicrosite/hustle-indexer/internal/repository"
	apperrors "github.com/Allinmicrosite/hustle-indexer/pkg/errors"
	"github.com/Allinmicrosite/hustle-indexer/pkg/pagination"
)

// DefaultReviewLimit is the default page size for review listings.
const DefaultReviewLimit = 20

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo       repository.ReviewRepository
	hustleRepo repository.HustleRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, hustleRepo repository.HustleRepository, producer *event.Producer, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:       repo,
		hustleRepo: hustleRepo,
		producer:   producer,
		logger:     logger,
	}
}

// CreateReviewInput holds the parameters for creating a review.
type CreateReviewInput struct {
	HustleID         string
	Username         string
	Email            *string
	SourcePlatform   string
	SourceDate       string
	SourceVerified   bool
	OverallScore     float64
	EarningPotential *float64
	TimeInvestment   *float64
	Difficulty       *float64
	Legitimacy       *float64
	Title            string
	Content          string
	Pros             []string
	Cons             []string
	MonthlyEarnings  *int
	TimeSpentHours   *int
	ExperienceMonths *int
	IsVerified       bool
	IsAnonymous      bool
}

// CreateReview validates and stores a new review. The owning hustle's cached
// aggregates are refreshed in the same transaction as the insert, so no
// review is ever stored without the score update.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*domain.Review, error) {
	if input.HustleID == "" {
		return nil, apperrors.InvalidInput("hustle_id is required")
	}
	if input.Username == "" {
		return nil, apperrors.InvalidInput("username is required")
	}
	if input.SourcePlatform == "" {
		return nil, apperrors.InvalidInput("source platform is required")
	}
	if input.SourceDate == "" {
		return nil, apperrors.InvalidInput("source date is required")
	}
	if input.Title == "" {
		return nil, apperrors.InvalidInput("title is required")
	}
	if input.Content == "" {
		return nil, apperrors.InvalidInput("content is required")
	}
	if !domain.IsValidScore(input.OverallScore) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("overall score must be between %.1f and %.1f", domain.MinScore, domain.MaxScore))
	}

	subScores := map[string]*float64{
		"earning_potential": input.EarningPotential,
		"time_investment":   input.TimeInvestment,
		"difficulty":        input.Difficulty,
		"legitimacy":        input.Legitimacy,
	}
	for name, score := range subScores {
		if score != nil && !domain.IsValidScore(*score) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("%s must be between %.1f and %.1f", name, domain.MinScore, domain.MaxScore))
		}
	}

	if input.MonthlyEarnings != nil && *input.MonthlyEarnings < 0 {
		return nil, apperrors.InvalidInput("monthly earnings must not be negative")
	}
	if input.TimeSpentHours != nil && *input.TimeSpentHours < 0 {
		return nil, apperrors.InvalidInput("time spent hours must not be negative")
	}
	if input.ExperienceMonths != nil && *input.ExperienceMonths < 0 {
		return nil, apperrors.InvalidInput("experience months must not be negative")
	}

	review := &domain.Review{
		ID:               uuid.New().String(),
		HustleID:         input.HustleID,
		Username:         input.Username,
		Email:            input.Email,
		SourcePlatform:   input.SourcePlatform,
		SourceDate:       input.SourceDate,
		SourceVerified:   input.SourceVerified,
		OverallScore:     input.OverallScore,
		EarningPotential: input.EarningPotential,
		TimeInvestment:   input.TimeInvestment,
		Difficulty:       input.Difficulty,
		Legitimacy:       input.Legitimacy,
		Title:            input.Title,
		Content:          input.Content,
		Pros:             input.Pros,
		Cons:             input.Cons,
		MonthlyEarnings:  input.MonthlyEarnings,
		TimeSpentHours:   input.TimeSpentHours,
		ExperienceMonths: input.ExperienceMonths,
		IsVerified:       input.IsVerified,
		IsAnonymous:      input.IsAnonymous,
		HelpfulCount:     0,
		CreatedAt:        time.Now().UTC(),
	}

	if review.Pros == nil {
		review.Pros = []string{}
	}
	if review.Cons == nil {
		review.Cons = []string{}
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.producer.PublishReviewCreated(ctx, review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.publishScoresUpdated(ctx, review.HustleID)

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("hustle_id", review.HustleID),
		slog.Float64("overall_score", review.OverallScore),
	)

	return review, nil
}

// publishScoresUpdated reads back the refreshed aggregates and announces them.
// Failures only cost the notification, never the stored review.
func (s *ReviewService) publishScoresUpdated(ctx context.Context, hustleID string) {
	hustle, err := s.hustleRepo.GetByID(ctx, hustleID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load hustle for scores_updated event",
			slog.String("hustle_id", hustleID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.producer.PublishHustleScoresUpdated(ctx, hustle.ID, hustle.AverageScore, hustle.ReviewCount); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish hustle.scores_updated event",
			slog.String("hustle_id", hustleID),
			slog.String("error", err.Error()),
		)
	}
}

// ListReviews returns the most recent reviews for an active hustle.
func (s *ReviewService) ListReviews(ctx context.Context, hustleID string, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = DefaultReviewLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	// Inactive and missing hustles both read as not found.
	if _, err := s.hustleRepo.GetByID(ctx, hustleID); err != nil {
		return nil, fmt.Errorf("get hustle for reviews: %w", err)
	}

	reviews, err := s.repo.ListByHustle(ctx, hustleID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}
