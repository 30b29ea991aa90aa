package http

import (
	"log/slog"
	"net/http"

	"github.com/Allinmicrosite/hustle-indexer/internal/service"
	"github.com/Allinmicrosite/hustle-indexer/pkg/httputil"
)

// StatsHandler handles HTTP requests for statistics endpoints.
type StatsHandler struct {
	service *service.StatsService
	logger  *slog.Logger
}

// NewStatsHandler creates a new statistics HTTP handler.
func NewStatsHandler(svc *service.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: svc,
		logger:  logger,
	}
}

// GetStatistics handles GET /api/statistics
// @Summary Site-wide aggregate statistics
// @Tags statistics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/statistics [get]
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStatistics(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: stats})
}
