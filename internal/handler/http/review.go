package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Allinmicrosite/hustle-indexer/internal/service"
	"github.com/Allinmicrosite/hustle-indexer/pkg/httputil"
	"github.com/Allinmicrosite/hustle-indexer/pkg/validator"
)

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateReviewRequest is the JSON request body for creating a review.
type CreateReviewRequest struct {
	HustleID         string   `json:"hustle_id" validate:"required,uuid"`
	Username         string   `json:"username" validate:"required,min=1,max=100"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	SourcePlatform   string   `json:"source_platform" validate:"required,max=100"`
	SourceDate       string   `json:"source_date" validate:"required,max=50"`
	SourceVerified   bool     `json:"source_verified"`
	OverallScore     float64  `json:"overall_score" validate:"required,gte=1,lte=10"`
	EarningPotential *float64 `json:"earning_potential" validate:"omitempty,gte=1,lte=10"`
	TimeInvestment   *float64 `json:"time_investment" validate:"omitempty,gte=1,lte=10"`
	Difficulty       *float64 `json:"difficulty" validate:"omitempty,gte=1,lte=10"`
	Legitimacy       *float64 `json:"legitimacy" validate:"omitempty,gte=1,lte=10"`
	Title            string   `json:"title" validate:"required,max=500"`
	Content          string   `json:"content" validate:"required,max=10000"`
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	MonthlyEarnings  *int     `json:"monthly_earnings" validate:"omitempty,gte=0"`
	TimeSpentHours   *int     `json:"time_spent_hours" validate:"omitempty,gte=0"`
	ExperienceMonths *int     `json:"experience_months" validate:"omitempty,gte=0"`
	IsVerified       bool     `json:"is_verified"`
	IsAnonymous      bool     `json:"is_anonymous"`
}

// CreateReview handles POST /api/reviews
// @Summary Create a review
// @Description Stores a review and refreshes the hustle's cached score aggregates
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &service.CreateReviewInput{
		HustleID:         req.HustleID,
		Username:         req.Username,
		Email:            req.Email,
		SourcePlatform:   req.SourcePlatform,
		SourceDate:       req.SourceDate,
		SourceVerified:   req.SourceVerified,
		OverallScore:     req.OverallScore,
		EarningPotential: req.EarningPotential,
		TimeInvestment:   req.TimeInvestment,
		Difficulty:       req.Difficulty,
		Legitimacy:       req.Legitimacy,
		Title:            req.Title,
		Content:          req.Content,
		Pros:             req.Pros,
		Cons:             req.Cons,
		MonthlyEarnings:  req.MonthlyEarnings,
		TimeSpentHours:   req.TimeSpentHours,
		ExperienceMonths: req.ExperienceMonths,
		IsVerified:       req.IsVerified,
		IsAnonymous:      req.IsAnonymous,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: review})
}

// ListReviews handles GET /api/hustles/{id}/reviews
// @Summary List reviews for a hustle
// @Tags reviews
// @Produce json
// @Param id path string true "Hustle UUID"
// @Param limit query int false "Number of reviews" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/hustles/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), id.String(), parseLimit(r, service.DefaultReviewLimit))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: reviews})
}
