package get_rooms

import (
	"context"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

type RoomCatalogService interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
