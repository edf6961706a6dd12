package release_slot

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	RoomID       string    // ID комнаты
	Date         time.Time // Дата бронирования
	SlotID       string    // ID слота
	ActingUserID string    // Идентификатор инициатора отмены
	IsPrivileged bool      // Администратор может отменить любое бронирование
}
