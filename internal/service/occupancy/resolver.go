package occupancy

import (
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// resolveDisplaySlot выбирает слот, управляющий визуальной схемой рассадки.
//
// Приоритет:
//  1. забронированный слот, чье окно [start, end) содержит now ("идет сейчас");
//  2. иначе забронированный слот с наименьшим временем начала строго
//     позже now ("ближайший предстоящий");
//  3. иначе ничего: комната отображается свободной.
func resolveDisplaySlot(slots []domain.Slot, now time.Time) *domain.Slot {
	var upcoming *domain.Slot

	for i := range slots {
		slot := &slots[i]
		if !slot.IsBooked {
			continue
		}

		if slot.ContainsTime(now) {
			return slot
		}

		if !slot.StartsAfter(now) {
			continue
		}
		if upcoming == nil || slot.StartTime.IsBefore(upcoming.StartTime) {
			upcoming = slot
		}
	}

	return upcoming
}
