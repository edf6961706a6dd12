package get_daily_stats

import (
	"net/http"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
)

type Handler struct {
	service DailyStatsService
	logger  Logger
}

func NewHandler(service DailyStatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDailyStats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/today - Failed to calculate stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats/today - Stats returned: booked=%d/%d", stats.BookedSlots, stats.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
