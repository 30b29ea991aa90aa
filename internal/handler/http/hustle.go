package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Allinmicrosite/hustle-indexer/internal/domain"
	"github.com/Allinmicrosite/hustle-indexer/internal/service"
	"github.com/Allinmicrosite/hustle-indexer/pkg/httputil"
	"github.com/Allinmicrosite/hustle-indexer/pkg/pagination"
	"github.com/Allinmicrosite/hustle-indexer/pkg/validator"
)

// HustleHandler handles HTTP requests for hustle endpoints.
type HustleHandler struct {
	service *service.HustleService
	logger  *slog.Logger
}

// NewHustleHandler creates a new hustle HTTP handler.
func NewHustleHandler(svc *service.HustleService, logger *slog.Logger) *HustleHandler {
	return &HustleHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateHustleRequest is the JSON request body for creating a hustle.
type CreateHustleRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=500"`
	Description     string   `json:"description" validate:"required"`
	CategoryID      *string  `json:"category_id" validate:"omitempty,uuid"`
	HourlyRateMin   *int     `json:"hourly_rate_min" validate:"omitempty,gte=0"`
	HourlyRateMax   *int     `json:"hourly_rate_max" validate:"omitempty,gte=0"`
	TimeCommitment  *string  `json:"time_commitment" validate:"omitempty,max=200"`
	DifficultyLevel *int     `json:"difficulty_level" validate:"omitempty,gte=1,lte=5"`
	Tags            []string `json:"tags"`
	Requirements    []string `json:"requirements"`
}

// ListHustles handles GET /api/hustles
// A search query takes precedence over a category filter, which takes
// precedence over the plain listing.
// @Summary List, search, or filter hustles
// @Tags hustles
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Result offset"
// @Param search query string false "Match against name and description"
// @Param categoryId query string false "Filter by category ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/hustles [get]
func (h *HustleHandler) ListHustles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		hustles []domain.HustleWithCategory
		total   int
		params  pagination.Params
		err     error
	)

	switch {
	case query.Has("search"):
		params = pagination.FromRequest(r, service.DefaultSearchLimit)
		hustles, total, err = h.service.SearchHustles(r.Context(), query.Get("search"), params)
	case query.Get("categoryId") != "":
		params = pagination.FromRequest(r, service.DefaultCategoryLimit)
		hustles, total, err = h.service.ListHustlesByCategory(r.Context(), query.Get("categoryId"), params)
	default:
		params = pagination.FromRequest(r, service.DefaultListLimit)
		hustles, total, err = h.service.ListHustles(r.Context(), params)
	}

	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: pagination.NewResult(hustles, total, params)})
}

// ListTopRated handles GET /api/hustles/top-rated
// @Summary Highest-scored hustles with review previews
// @Tags hustles
// @Produce json
// @Param limit query int false "Number of hustles" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /api/hustles/top-rated [get]
func (h *HustleHandler) ListTopRated(w http.ResponseWriter, r *http.Request) {
	hustles, err := h.service.ListTopRated(r.Context(), parseLimit(r, service.DefaultTopRatedLimit))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: hustles})
}

// ListRecent handles GET /api/hustles/recent
// @Summary Most recently added hustles
// @Tags hustles
// @Produce json
// @Param limit query int false "Number of hustles" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /api/hustles/recent [get]
func (h *HustleHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	hustles, err := h.service.ListRecent(r.Context(), parseLimit(r, service.DefaultRecentLimit))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: hustles})
}

// GetHustle handles GET /api/hustles/{id}
// @Summary Get an active hustle by ID
// @Tags hustles
// @Produce json
// @Param id path string true "Hustle UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/hustles/{id} [get]
func (h *HustleHandler) GetHustle(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseUUID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	hustle, err := h.service.GetHustle(r.Context(), id.String())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: hustle})
}

// CreateHustle handles POST /api/hustles
// @Summary Create a hustle
// @Tags hustles
// @Accept json
// @Produce json
// @Param request body CreateHustleRequest true "Hustle to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/hustles [post]
func (h *HustleHandler) CreateHustle(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateHustleRequest
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

	hustle, err := h.service.CreateHustle(r.Context(), &service.CreateHustleInput{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		HourlyRateMin:   req.HourlyRateMin,
		HourlyRateMax:   req.HourlyRateMax,
		TimeCommitment:  req.TimeCommitment,
		DifficultyLevel: req.DifficultyLevel,
		Tags:            req.Tags,
		Requirements:    req.Requirements,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: hustle})
}

// parseLimit reads the limit query parameter, falling back to the default
// when absent or unusable.
func parseLimit(r *http.Request, defaultLimit int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	return limit
}
