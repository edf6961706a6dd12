package reserve_slot

import (
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// Request модель запроса на резервирование слота
type Request struct {
	RoomID       string               // ID комнаты
	Date         time.Time            // Дата бронирования (только сегодня)
	SlotID       string               // Детерминированный ID слота из сетки дня
	UserIdentity string               // Идентификатор бронирующего (PRN) из слоя аутентификации
	UserName     string               // Отображаемое имя бронирующего
	GroupMembers []domain.GroupMember // Участники группы в порядке рассадки
}

// Response модель ответа с зарезервированным слотом
type Response struct {
	RoomID   string
	RoomName string
	Capacity int
	Date     time.Time
	Slot     domain.Slot // слот со всеми полями бронирования и рассадкой
}
