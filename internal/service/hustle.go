package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/internal/event"
	"github.com/Allinmicrosite/hustle-indexer/internal/repository"
	apperrors "github.com/Allinmicrosite/hustle-indexer/pkg/errors"
	"github.com/Allinmicrosite/hustle-indexer/pkg/pagination"
)

// Default result sizes for the hustle read paths.
const (
	DefaultListLimit     = 50
	DefaultSearchLimit   = 20
	DefaultCategoryLimit = 20
	DefaultTopRatedLimit = 10
	DefaultRecentLimit   = 10

	// topRatedReviewPreview is how many recent reviews each top-rated
	// entry carries.
	topRatedReviewPreview = 2
)

// HustleService implements the business logic for hustle operations.
type HustleService struct {
	repo       repository.HustleRepository
	reviewRepo repository.ReviewRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewHustleService creates a new hustle service.
func NewHustleService(repo repository.HustleRepository, reviewRepo repository.ReviewRepository, producer *event.Producer, logger *slog.Logger) *HustleService {
	return &HustleService{
		repo:       repo,
		reviewRepo: reviewRepo,
		producer:   producer,
		logger:     logger,
	}
}

// CreateHustleInput holds the parameters for creating a hustle.
type CreateHustleInput struct {
	Name            string
	Description     string
	CategoryID      *string
	HourlyRateMin   *int
	HourlyRateMax   *int
	TimeCommitment  *string
	DifficultyLevel *int
	Tags            []string
	Requirements    []string
}

// CreateHustle creates a new hustle. New hustles start active with zero
// reviews and a zero average score.
func (s *HustleService) CreateHustle(ctx context.Context, input *CreateHustleInput) (*domain.Hustle, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("hustle name is required")
	}
	if input.Description == "" {
		return nil, apperrors.InvalidInput("hustle description is required")
	}
	if input.DifficultyLevel != nil && !domain.IsValidDifficulty(*input.DifficultyLevel) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("difficulty level must be between %d and %d", domain.MinDifficultyLevel, domain.MaxDifficultyLevel))
	}
	if input.HourlyRateMin != nil && *input.HourlyRateMin < 0 {
		return nil, apperrors.InvalidInput("hourly rate minimum must not be negative")
	}
	if input.HourlyRateMax != nil && *input.HourlyRateMax < 0 {
		return nil, apperrors.InvalidInput("hourly rate maximum must not be negative")
	}
	if input.HourlyRateMin != nil && input.HourlyRateMax != nil && *input.HourlyRateMin > *input.HourlyRateMax {
		return nil, apperrors.InvalidInput("hourly rate minimum must not exceed maximum")
	}

	now := time.Now().UTC()
	hustle := &domain.Hustle{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		CategoryID:      input.CategoryID,
		AverageScore:    0,
		ReviewCount:     0,
		HourlyRateMin:   input.HourlyRateMin,
		HourlyRateMax:   input.HourlyRateMax,
		TimeCommitment:  input.TimeCommitment,
		DifficultyLevel: input.DifficultyLevel,
		Tags:            input.Tags,
		Requirements:    input.Requirements,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if hustle.Tags == nil {
		hustle.Tags = []string{}
	}
	if hustle.Requirements == nil {
		hustle.Requirements = []string{}
	}

	if err := s.repo.Create(ctx, hustle); err != nil {
		return nil, fmt.Errorf("create hustle: %w", err)
	}

	if err := s.producer.PublishHustleCreated(ctx, hustle); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish hustle.created event",
			slog.String("hustle_id", hustle.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "hustle created",
		slog.String("hustle_id", hustle.ID),
		slog.String("name", hustle.Name),
	)

	return hustle, nil
}

// GetHustle retrieves an active hustle with its category by ID.
func (s *HustleService) GetHustle(ctx context.Context, id string) (*domain.HustleWithCategory, error) {
	hustle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hustle by id: %w", err)
	}
	return hustle, nil
}

// ListHustles returns active hustles ordered by average score descending.
func (s *HustleService) ListHustles(ctx context.Context, params pagination.Params) ([]domain.HustleWithCategory, int, error) {
	params = clampParams(params, DefaultListLimit)

	hustles, total, err := s.repo.List(ctx, repository.HustleFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list hustles: %w", err)
	}

	return hustles, total, nil
}

// SearchHustles returns active hustles whose name or description matches the
// query. A blank query returns no results without touching storage.
func (s *HustleService) SearchHustles(ctx context.Context, query string, params pagination.Params) ([]domain.HustleWithCategory, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.HustleWithCategory{}, 0, nil
	}

	params = clampParams(params, DefaultSearchLimit)

	hustles, total, err := s.repo.List(ctx, repository.HustleFilter{
		Search: &query,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("search hustles: %w", err)
	}

	return hustles, total, nil
}

// ListHustlesByCategory returns active hustles in the given category.
func (s *HustleService) ListHustlesByCategory(ctx context.Context, categoryID string, params pagination.Params) ([]domain.HustleWithCategory, int, error) {
	if categoryID == "" {
		return nil, 0, apperrors.InvalidInput("category id is required")
	}

	params = clampParams(params, DefaultCategoryLimit)

	hustles, total, err := s.repo.List(ctx, repository.HustleFilter{
		CategoryID: &categoryID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list hustles by category: %w", err)
	}

	return hustles, total, nil
}

// ListTopRated returns the highest-scored reviewed hustles, each carrying a
// short preview of its most recent reviews.
func (s *HustleService) ListTopRated(ctx context.Context, limit int) ([]domain.HustleWithReviews, error) {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	hustles, err := s.repo.ListTopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top rated hustles: %w", err)
	}

	result := make([]domain.HustleWithReviews, len(hustles))
	for i, h := range hustles {
		result[i] = domain.HustleWithReviews{HustleWithCategory: h}

		reviews, err := s.reviewRepo.ListByHustle(ctx, h.ID, topRatedReviewPreview)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load review preview",
				slog.String("hustle_id", h.ID),
				slog.String("error", err.Error()),
			)
			reviews = []domain.Review{}
		}
		result[i].Reviews = reviews
	}

	return result, nil
}

// ListRecent returns the most recently added active hustles.
func (s *HustleService) ListRecent(ctx context.Context, limit int) ([]domain.HustleWithCategory, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	hustles, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent hustles: %w", err)
	}

	return hustles, nil
}

// clampParams applies the default limit and the global maximum.
func clampParams(params pagination.Params, defaultLimit int) pagination.Params {
	if params.Limit <= 0 {
		params.Limit = defaultLimit
	}
	if params.Limit > pagination.MaxLimit {
		params.Limit = pagination.MaxLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return params
}
