package get_daily_stats

import (
	"context"

	"github.com/discusszone/DZ-BookingService/internal/service/occupancy/models"
)

type DailyStatsService interface {
	GetDailyStats(ctx context.Context) (*models.DailyStatsView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
