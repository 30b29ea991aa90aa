package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/internal/repository"
)

// StatsService implements the business logic for statistics operations.
type StatsService struct {
	repo   repository.StatsRepository
	logger *slog.Logger
}

// NewStatsService creates a new statistics service.
func NewStatsService(repo repository.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		repo:   repo,
		logger: logger,
	}
}

// GetStatistics returns site-wide aggregate numbers.
func (s *StatsService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := s.repo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return stats, nil
}

// GetCategoryAverages returns the per-category score averages.
func (s *StatsService) GetCategoryAverages(ctx context.Context) ([]domain.CategoryAverage, error) {
	averages, err := s.repo.GetCategoryAverages(ctx)
	if err != nil {
		return nil, fmt.Errorf("get category averages: %w", err)
	}
	return averages, nil
}
