package get_schedule

import (
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// Request модель запроса расписания комнаты на дату
type Request struct {
	RoomID string    // ID комнаты
	Date   time.Time // Дата (без времени); бронируем только сегодня, прочие даты дают пустую сетку
}

// Response модель ответа с объединенным представлением дня:
// свежая сетка, слитая с записью журнала бронирований
type Response struct {
	RoomID   string
	RoomName string
	Capacity int
	Date     time.Time
	Slots    []domain.Slot
}
