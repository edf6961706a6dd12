package get_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	roomsRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/rooms"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
)

// UseCase use case получения расписания комнаты на дату.
// Возвращает объединенное представление: свежесгенерированная сетка
// слотов, слитая по ID слота с сохраненными бронированиями журнала.
type UseCase struct {
	roomRepo     RoomRepository
	dayRepo      RoomDayRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, dayRepo RoomDayRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		dayRepo:      dayRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetSchedule: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetSchedule: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Свежая сетка: пустая для любой даты, кроме сегодняшней
	fresh := domain.GenerateDaySlots(room.ID, req.Date, now)

	// Запись журнала; отсутствие записи считается валидным состоянием (день без бронирований)
	persisted, err := uc.dayRepo.GetByRoomAndDay(ctx, room.ID, req.Date)
	if err != nil && !errors.Is(err, roomdayRepo.ErrDayNotFound) {
		uc.logger.Error("GetSchedule: failed to get day record for room=%s: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get day record: %v", ErrInternal, err)
	}

	merged := fresh
	if persisted != nil {
		merged = domain.MergeSlots(fresh, persisted.Slots)
	}

	uc.logger.Info("GetSchedule: room=%s, date=%s, slots=%d",
		room.ID, req.Date.Format(domain.DateFormat), len(merged))

	return &Response{
		RoomID:   room.ID,
		RoomName: room.DisplayName,
		Capacity: room.Capacity,
		Date:     req.Date,
		Slots:    merged,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
