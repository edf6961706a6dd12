package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	roomsRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/rooms"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
)

// UseCase use case резервирования слота.
// Двухфазная схема: чистое распределение мест (seats.go) выполняется вне
// критической секции, атомарный коммит выполняется внутри сериализуемой транзакции
// с перечитыванием состояния и перепроверкой занятости. Гарантия: для
// любого слота переход Unbooked -> Booked совершает не более одного
// запроса, проигравшие получают ErrSlotConflict.
type UseCase struct {
	roomRepo     RoomRepository
	dayRepo      RoomDayRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	dayRepo RoomDayRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		dayRepo:      dayRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case резервирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: user=%s, room=%s, slot=%s, members=%d",
		req.UserIdentity, req.RoomID, req.SlotID, len(req.GroupMembers))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Политика: бронировать можно только на сегодня
	if err := validateBookableDay(req.Date, now); err != nil {
		uc.logger.Warn("ReserveSlot: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			uc.logger.Warn("ReserveSlot: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("ReserveSlot: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Слот обязан присутствовать в актуальной сетке дня: неизвестный ID
	// или уже начавшийся час отклоняются здесь (генератор служит предохранителем)
	fresh := domain.GenerateDaySlots(room.ID, req.Date, now)
	shell := findSlot(fresh, req.SlotID)
	if shell == nil {
		uc.logger.Warn("ReserveSlot: slot id=%s not in current grid of room=%s", req.SlotID, room.ID)
		return nil, ErrSlotNotFound
	}

	// 6. Чистое распределение мест против текущего (возможно устаревшего)
	// состояния: дешевая работа вне критической секции
	current, err := uc.currentSlotState(ctx, room.ID, req.Date, *shell)
	if err != nil {
		return nil, err
	}

	alloc, err := allocateSeats(room, current, req.UserIdentity, req.UserName, req.GroupMembers)
	if err != nil {
		uc.logger.Warn("ReserveSlot: allocation rejected for slot=%s: %v", req.SlotID, err)
		return nil, err
	}

	// 7. Атомарный коммит: перечитать -> перепроверить -> записать
	var booked domain.Slot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day, err := uc.dayRepo.GetByRoomAndDay(txCtx, room.ID, req.Date)
		if err != nil && !errors.Is(err, roomdayRepo.ErrDayNotFound) {
			uc.logger.Error("ReserveSlot: failed to read day record: %v", err)
			return fmt.Errorf("%w: failed to read day record: %v", ErrInternal, err)
		}

		// Первая запись дня: создаем запись журнала из свежей сетки
		if day == nil {
			newDay := &domain.RoomDay{
				RoomID: room.ID,
				Day:    req.Date,
				Slots:  fresh,
			}

			target := newDay.FindSlot(req.SlotID)
			target.ApplyBooking(req.UserIdentity, req.UserName, alloc.IsGroupBooking, req.GroupMembers, alloc.Occupants)

			if _, err := uc.dayRepo.Create(txCtx, newDay); err != nil {
				if errors.Is(err, roomdayRepo.ErrDayAlreadyExists) {
					// Конкурент создал запись первым, гонка проиграна
					return ErrSlotConflict
				}
				uc.logger.Error("ReserveSlot: failed to create day record: %v", err)
				return fmt.Errorf("%w: failed to create day record: %v", ErrInternal, err)
			}

			booked = *target
			return nil
		}

		// Запись существует: сливаем с актуальной сеткой и перепроверяем занятость
		merged := domain.MergeSlots(fresh, day.Slots)
		target := findSlotPtr(merged, req.SlotID)
		if target == nil {
			return ErrSlotNotFound
		}
		if target.IsBooked {
			// Слот заняли между валидацией и коммитом
			return ErrSlotConflict
		}

		target.ApplyBooking(req.UserIdentity, req.UserName, alloc.IsGroupBooking, req.GroupMembers, alloc.Occupants)

		if err := uc.dayRepo.UpdateSlots(txCtx, room.ID, req.Date, merged, day.Version); err != nil {
			if errors.Is(err, roomdayRepo.ErrVersionConflict) {
				return ErrSlotConflict
			}
			uc.logger.Error("ReserveSlot: failed to update day record: %v", err)
			return fmt.Errorf("%w: failed to update day record: %v", ErrInternal, err)
		}

		booked = *target
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("ReserveSlot: lost commit race for slot=%s, user=%s", req.SlotID, req.UserIdentity)
		}
		return nil, err
	}

	uc.logger.Info("ReserveSlot: booked slot=%s, room=%s, user=%s, party=%d",
		booked.ID, room.ID, req.UserIdentity, booked.PartySize())

	return &Response{
		RoomID:   room.ID,
		RoomName: room.DisplayName,
		Capacity: room.Capacity,
		Date:     req.Date,
		Slot:     booked,
	}, nil
}

// currentSlotState возвращает актуальное состояние слота для предварительной
// проверки: сохраненный вариант из журнала, если он есть, иначе свежая оболочка
func (uc *UseCase) currentSlotState(ctx context.Context, roomID string, date time.Time, shell domain.Slot) (*domain.Slot, error) {
	day, err := uc.dayRepo.GetByRoomAndDay(ctx, roomID, date)
	if err != nil {
		if errors.Is(err, roomdayRepo.ErrDayNotFound) {
			return &shell, nil
		}
		uc.logger.Error("ReserveSlot: failed to read day record for precheck: %v", err)
		return nil, fmt.Errorf("%w: failed to read day record: %v", ErrInternal, err)
	}

	if persisted := day.FindSlot(shell.ID); persisted != nil {
		return persisted, nil
	}
	return &shell, nil
}

// findSlot ищет слот по ID, возвращает копию
func findSlot(slots []domain.Slot, slotID string) *domain.Slot {
	for i := range slots {
		if slots[i].ID == slotID {
			s := slots[i]
			return &s
		}
	}
	return nil
}

// findSlotPtr ищет слот по ID, возвращает указатель на элемент среза
func findSlotPtr(slots []domain.Slot, slotID string) *domain.Slot {
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i]
		}
	}
	return nil
}
