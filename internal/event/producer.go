package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	pkgkafka "github.com/Allinmicrosite/hustle-indexer/pkg/kafka"
)

// Kafka topics for hustle domain events.
var (
	TopicHustleCreated       = pkgkafka.Topic("hustle", "created")
	TopicHustleScoresUpdated = pkgkafka.Topic("hustle", "scores_updated")
	TopicReviewCreated       = pkgkafka.Topic("review", "created")
)

// Aggregate type constants.
const (
	AggregateTypeHustle = "hustle"
	AggregateTypeReview = "review"
)

// Source identifier for events originating from this service.
const SourceHustleIndexer = "hustle-indexer"

// HustleCreatedData is the payload for a hustle.created event.
type HustleCreatedData struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	CategoryID      *string  `json:"category_id,omitempty"`
	DifficultyLevel *int     `json:"difficulty_level,omitempty"`
	Tags            []string `json:"tags"`
}

// HustleScoresUpdatedData is the payload for a hustle.scores_updated event,
// emitted after a new review refreshes the cached aggregates.
type HustleScoresUpdatedData struct {
	HustleID     string  `json:"hustle_id"`
	AverageScore float64 `json:"average_score"`
	ReviewCount  int     `json:"review_count"`
}

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ID           string  `json:"id"`
	HustleID     string  `json:"hustle_id"`
	Username     string  `json:"username"`
	OverallScore float64 `json:"overall_score"`
	IsVerified   bool    `json:"is_verified"`
}

// Producer publishes hustle domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the hustle indexer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishHustleCreated publishes a hustle.created event.
func (p *Producer) PublishHustleCreated(ctx context.Context, h *domain.Hustle) error {
	data := HustleCreatedData{
		ID:              h.ID,
		Name:            h.Name,
		CategoryID:      h.CategoryID,
		DifficultyLevel: h.DifficultyLevel,
		Tags:            h.Tags,
	}

	event, err := pkgkafka.NewEvent(TopicHustleCreated, h.ID, AggregateTypeHustle, SourceHustleIndexer, data)
	if err != nil {
		return fmt.Errorf("create hustle.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicHustleCreated, event); err != nil {
		return fmt.Errorf("publish hustle.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published hustle.created event",
		slog.String("hustle_id", h.ID),
	)

	return nil
}

// PublishHustleScoresUpdated publishes a hustle.scores_updated event.
func (p *Producer) PublishHustleScoresUpdated(ctx context.Context, hustleID string, averageScore float64, reviewCount int) error {
	data := HustleScoresUpdatedData{
		HustleID:     hustleID,
		AverageScore: averageScore,
		ReviewCount:  reviewCount,
	}

	event, err := pkgkafka.NewEvent(TopicHustleScoresUpdated, hustleID, AggregateTypeHustle, SourceHustleIndexer, data)
	if err != nil {
		return fmt.Errorf("create hustle.scores_updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicHustleScoresUpdated, event); err != nil {
		return fmt.Errorf("publish hustle.scores_updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published hustle.scores_updated event",
		slog.String("hustle_id", hustleID),
		slog.Float64("average_score", averageScore),
		slog.Int("review_count", reviewCount),
	)

	return nil
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, rev *domain.Review) error {
	data := ReviewCreatedData{
		ID:           rev.ID,
		HustleID:     rev.HustleID,
		Username:     rev.Username,
		OverallScore: rev.OverallScore,
		IsVerified:   rev.IsVerified,
	}

	event, err := pkgkafka.NewEvent(TopicReviewCreated, rev.ID, AggregateTypeReview, SourceHustleIndexer, data)
	if err != nil {
		return fmt.Errorf("create review.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewCreated, event); err != nil {
		return fmt.Errorf("publish review.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.created event",
		slog.String("review_id", rev.ID),
		slog.String("hustle_id", rev.HustleID),
	)

	return nil
}
