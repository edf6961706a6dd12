package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
	"github.com/discusszone/DZ-BookingService/internal/api/middleware"
	releaseSlot "github.com/discusszone/DZ-BookingService/internal/usecase/release_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные отмены"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase ReleaseSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actingUserID := r.Header.Get(middleware.HeaderUserID)
	isPrivileged := middleware.IsAdmin(r)

	useCaseReq, err := req.ToUseCaseRequest(actingUserID, isPrivileged)
	if err != nil {
		h.logger.Warn("PATCH /bookings/cancel - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, releaseSlot.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/cancel - Invalid input: user=%s, slot_id=%s, error=%v",
				actingUserID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, releaseSlot.ErrReservationNotFound):
			h.logger.Warn("PATCH /bookings/cancel - Reservation not found: user=%s, slot_id=%s",
				actingUserID, req.SlotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, releaseSlot.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/cancel - Access denied: user=%s, slot_id=%s",
				actingUserID, req.SlotID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /bookings/cancel - Failed to release slot: user=%s, slot_id=%s, error=%v",
				actingUserID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/cancel - Reservation cancelled: user=%s, slot_id=%s, privileged=%t",
		actingUserID, req.SlotID, isPrivileged)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
