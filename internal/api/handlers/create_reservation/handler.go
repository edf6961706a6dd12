package create_reservation

import (
	"errors"
	"net/http"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
	"github.com/discusszone/DZ-BookingService/internal/api/middleware"
	reserveSlot "github.com/discusszone/DZ-BookingService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgRoomNotFound       = "комната не найдена"
	msgSlotNotFound       = "слот не найден в сетке дня"
	msgNotBookableDay     = "бронирование доступно только на сегодняшний день"
	msgSlotAlreadyBooked  = "слот уже забронирован"
	msgCapacityExceeded   = "размер группы превышает вместимость комнаты"
	msgSlotConflict       = "слот только что забронирован другим пользователем"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Идентичность бронирующего из заголовков (проверены middleware.Auth)
	userIdentity := r.Header.Get(middleware.HeaderUserID)
	userName := r.Header.Get(middleware.HeaderUserName)

	useCaseReq, err := req.ToUseCaseRequest(userIdentity, userName)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, room_id=%s, error=%v",
				userIdentity, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveSlot.ErrNotBookableDay):
			h.logger.Warn("POST /bookings - Not a bookable day: user=%s, room_id=%s, date=%s",
				userIdentity, req.RoomID, req.Date)
			handlers.RespondBadRequest(w, msgNotBookableDay)

		case errors.Is(err, reserveSlot.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: user=%s, room_id=%s", userIdentity, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: user=%s, slot_id=%s", userIdentity, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reserveSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: user=%s, slot_id=%s", userIdentity, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, reserveSlot.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: user=%s, room_id=%s, members=%d",
				userIdentity, req.RoomID, len(req.GroupMembers))
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, reserveSlot.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Concurrent booking conflict: user=%s, slot_id=%s",
				userIdentity, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /bookings - Failed to reserve slot: user=%s, slot_id=%s, error=%v",
				userIdentity, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Slot reserved: user=%s, slot_id=%s, party_size=%d",
		userIdentity, result.Slot.ID, result.Slot.PartySize())
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
