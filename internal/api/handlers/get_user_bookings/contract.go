package get_user_bookings

import (
	"context"

	"github.com/discusszone/DZ-BookingService/internal/service/occupancy/models"
)

type UserBookingsService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.UserBookingsView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
