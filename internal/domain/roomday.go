package domain

import "time"

// RoomDay запись журнала бронирований: состояние слотов одной комнаты
// на одну календарную дату. Ключ: (RoomID, Day). Version увеличивается
// при каждой записи и служит для optimistic concurrency control.
type RoomDay struct {
	RoomID    string
	Day       time.Time
	Slots     []Slot
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindSlot возвращает слот по ID или nil, если его нет в записи
func (d *RoomDay) FindSlot(slotID string) *Slot {
	for i := range d.Slots {
		if d.Slots[i].ID == slotID {
			return &d.Slots[i]
		}
	}
	return nil
}

// BookedCount число забронированных слотов в записи
func (d *RoomDay) BookedCount() int {
	count := 0
	for i := range d.Slots {
		if d.Slots[i].IsBooked {
			count++
		}
	}
	return count
}
