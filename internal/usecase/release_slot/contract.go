package release_slot

import (
	"context"
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// RoomDayRepository интерфейс репозитория журнала бронирований
type RoomDayRepository interface {
	GetByRoomAndDay(ctx context.Context, roomID string, day time.Time) (*domain.RoomDay, error)
	UpdateSlots(ctx context.Context, roomID string, day time.Time, slots []domain.Slot, expectedVersion int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
