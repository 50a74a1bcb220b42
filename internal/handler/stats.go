package handler

import (
	"log/slog"
	"net/http"

	"github.com/dailydo/dailydo/internal/auth"
	"github.com/dailydo/dailydo/internal/service"
)

// StatsHandler handles HTTP requests for completion statistics.
type StatsHandler struct {
	svc    *service.StatsService
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		svc:    svc,
		logger: logger,
	}
}

// Today handles GET /api/stats/today.
func (h *StatsHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	stats, err := h.svc.Today(r.Context(), userID)
	if err != nil {
		h.handleStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Week handles GET /api/stats/week. Always returns exactly 7 entries,
// oldest day first.
func (h *StatsHandler) Week(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	stats, err := h.svc.Week(r.Context(), userID)
	if err != nil {
		h.handleStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Monthly handles GET /api/stats/monthly. Most recent month first, at most 12.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	stats, err := h.svc.Monthly(r.Context(), userID)
	if err != nil {
		h.handleStatsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) handleStatsError(w http.ResponseWriter, err error) {
	h.logger.Error("stats error", "error", err.Error())
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
