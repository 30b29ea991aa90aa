package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Allinmicrosite/hustle-indexer/internal/service"
	"github.com/Allinmicrosite/hustle-indexer/pkg/health"
	"github.com/Allinmicrosite/hustle-indexer/pkg/middleware"
)

// ServiceName labels metrics and trace spans emitted by this service.
const ServiceName = "hustle-indexer"

// NewRouter creates a chi router with all hustle indexer routes registered.
func NewRouter(
	categoryService *service.CategoryService,
	hustleService *service.HustleService,
	reviewService *service.ReviewService,
	statsService *service.StatsService,
	healthHandler *health.Handler,
	corsCfg middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(ServiceName))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(ServiceName))

	// Operational endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Category API endpoints
	categoryHandler := NewCategoryHandler(categoryService, statsService, logger)

	r.Route("/api/categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", categoryHandler.ListCategories)
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/averages", categoryHandler.GetCategoryAverages)
		r.Get("/{slug}", categoryHandler.GetCategoryBySlug)
	})

	// Hustle API endpoints
	hustleHandler := NewHustleHandler(hustleService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)

	r.Route("/api/hustles", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", hustleHandler.ListHustles)
		r.Post("/", hustleHandler.CreateHustle)
		r.Get("/top-rated", hustleHandler.ListTopRated)
		r.Get("/recent", hustleHandler.ListRecent)
		r.Get("/{id}", hustleHandler.GetHustle)
		r.Get("/{id}/reviews", reviewHandler.ListReviews)
	})

	// Review API endpoints
	r.Route("/api/reviews", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", reviewHandler.CreateReview)
	})

	// Statistics API endpoints
	statsHandler := NewStatsHandler(statsService, logger)

	r.Route("/api/statistics", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", statsHandler.GetStatistics)
	})

	return r
}
