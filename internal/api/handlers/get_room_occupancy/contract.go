package get_room_occupancy

import (
	"context"

	"github.com/discusszone/DZ-BookingService/internal/service/occupancy/models"
)

type OccupancyService interface {
	GetRoomOccupancy(ctx context.Context, roomID string) (*models.RoomOccupancyView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
