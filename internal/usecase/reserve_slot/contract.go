package reserve_slot

import (
	"context"
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория каталога комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// RoomDayRepository интерфейс репозитория журнала бронирований
type RoomDayRepository interface {
	GetByRoomAndDay(ctx context.Context, roomID string, day time.Time) (*domain.RoomDay, error)
	Create(ctx context.Context, day *domain.RoomDay) (*domain.RoomDay, error)
	UpdateSlots(ctx context.Context, roomID string, day time.Time, slots []domain.Slot, expectedVersion int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
