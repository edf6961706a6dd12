package get_user_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
	"github.com/discusszone/DZ-BookingService/internal/api/middleware"
)

const (
	msgForbidden = "доступ запрещен"
)

type Handler struct {
	service UserBookingsService
	logger  Logger
}

func NewHandler(service UserBookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
// Пользователь видит только свои бронирования, администратор видит любые.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	actingUserID := r.Header.Get(middleware.HeaderUserID)
	if actingUserID != userID && !middleware.IsAdmin(r) {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: acting_user=%s, target_user=%s",
			actingUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	view, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Returned %d bookings: user=%s", len(view.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
