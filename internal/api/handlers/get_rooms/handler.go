package get_rooms

import (
	"net/http"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
)

type Handler struct {
	service RoomCatalogService
	logger  Logger
}

func NewHandler(service RoomCatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Returned %d rooms", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromDomainRooms(rooms))
}
