package get_room_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
	"github.com/discusszone/DZ-BookingService/internal/service/occupancy"
)

const (
	msgRoomNotFound = "комната не найдена"
)

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID := vars["roomId"]

	view, err := h.service.GetRoomOccupancy(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, occupancy.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/occupancy - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/occupancy - Failed to resolve occupancy: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/occupancy - Occupancy returned: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
