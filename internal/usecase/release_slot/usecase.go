package release_slot

import (
	"context"
	"errors"
	"fmt"

	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
)

// UseCase use case отмены бронирования.
// Пользователь может отменить только свое бронирование, администратор любое.
// Отмена полностью очищает поля бронирования: после нее слот неотличим от
// свежего, повторное бронирование не наследует никаких остатков.
type UseCase struct {
	dayRepo   RoomDayRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dayRepo RoomDayRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		dayRepo:   dayRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("ReleaseSlot: user=%s, room=%s, slot=%s, privileged=%t",
		req.ActingUserID, req.RoomID, req.SlotID, req.IsPrivileged)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseSlot: validation failed: %v", err)
		return err
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day, err := uc.dayRepo.GetByRoomAndDay(txCtx, req.RoomID, req.Date)
		if err != nil {
			if errors.Is(err, roomdayRepo.ErrDayNotFound) {
				// Нет записи журнала, значит нет и бронирований
				return ErrReservationNotFound
			}
			uc.logger.Error("ReleaseSlot: failed to read day record: %v", err)
			return fmt.Errorf("%w: failed to read day record: %v", ErrInternal, err)
		}

		slot := day.FindSlot(req.SlotID)
		if slot == nil || !slot.IsBooked {
			return ErrReservationNotFound
		}

		if !req.IsPrivileged && slot.BookedByIdentity != req.ActingUserID {
			uc.logger.Warn("ReleaseSlot: user=%s may not cancel booking of user=%s",
				req.ActingUserID, slot.BookedByIdentity)
			return ErrAccessDenied
		}

		slot.ClearBooking()

		if err := uc.dayRepo.UpdateSlots(txCtx, req.RoomID, req.Date, day.Slots, day.Version); err != nil {
			// Внутри FOR UPDATE конфликт версий невозможен; любая ошибка считается внутренней
			uc.logger.Error("ReleaseSlot: failed to update day record: %v", err)
			return fmt.Errorf("%w: failed to update day record: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("ReleaseSlot: cancelled slot=%s in room=%s by user=%s", req.SlotID, req.RoomID, req.ActingUserID)
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if req.ActingUserID == "" {
		return fmt.Errorf("%w: acting user identity is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
