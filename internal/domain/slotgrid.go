package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/discusszone/DZ-BookingService/pkg/types"
)

// SlotID детерминированный идентификатор слота, производный от
// (комната, дата, час). Повторная генерация дает тот же ID, поэтому
// свежие слоты сливаются с сохраненными записями журнала по ключу.
func SlotID(roomID string, date time.Time, hour int) string {
	return fmt.Sprintf("slot-%s-%s-%02d", roomID, date.Format(DateFormat), hour)
}

// GenerateDaySlots генерирует упорядоченную сетку свободных слотов комнаты
// на дату date с учетом текущего момента now.
//
// Правила (политика "бронирование только на сегодня"):
//   - date не совпадает с календарным днем now: пустая сетка;
//   - час now >= часа закрытия: пустая сетка;
//   - первый слот начинается не раньше часа открытия; если минуты now > 0,
//     текущий час уже не включается, сетка начинается со следующего целого часа.
func GenerateDaySlots(roomID string, date, now time.Time) []Slot {
	if !IsSameDay(date, now) {
		return []Slot{}
	}

	currentHour := now.Hour()
	if currentHour >= ClosingHour {
		return []Slot{}
	}

	startHour := OpeningHour
	if currentHour >= OpeningHour {
		if now.Minute() > 0 {
			startHour = currentHour + 1
		} else {
			startHour = currentHour
		}
	}
	if startHour < OpeningHour {
		startHour = OpeningHour
	}

	slots := make([]Slot, 0, ClosingHour-startHour)
	for hour := startHour; hour < ClosingHour; hour++ {
		slots = append(slots, Slot{
			ID:        SlotID(roomID, date, hour),
			StartTime: types.TimeString(fmt.Sprintf("%02d:00", hour)),
			EndTime:   types.TimeString(fmt.Sprintf("%02d:00", hour+1)),
		})
	}

	return slots
}

// GenerateFullDayGrid генерирует полную сетку дня без усечения по текущему
// времени. Используется для расчета дневной статистики занятости.
func GenerateFullDayGrid(roomID string, date time.Time) []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		slots = append(slots, Slot{
			ID:        SlotID(roomID, date, hour),
			StartTime: types.TimeString(fmt.Sprintf("%02d:00", hour)),
			EndTime:   types.TimeString(fmt.Sprintf("%02d:00", hour+1)),
		})
	}
	return slots
}

// MergeSlots сливает свежую сетку со слотами из журнала. Ключ слияния: ID слота.
//
// Правила:
//   - забронированный слот из журнала замещает свежую оболочку с тем же ID;
//   - забронированный слот, выпавший из усеченной сетки (его час уже начался),
//     сохраняется в результате, запись о бронировании не теряется;
//   - незабронированные слоты журнала, выпавшие из сетки, отбрасываются.
//
// Результат упорядочен по времени начала.
func MergeSlots(fresh []Slot, persisted []Slot) []Slot {
	persistedByID := make(map[string]*Slot, len(persisted))
	for i := range persisted {
		persistedByID[persisted[i].ID] = &persisted[i]
	}

	merged := make([]Slot, 0, len(fresh))
	seen := make(map[string]bool, len(fresh))

	for i := range fresh {
		seen[fresh[i].ID] = true
		if p, ok := persistedByID[fresh[i].ID]; ok && p.IsBooked {
			merged = append(merged, *p)
			continue
		}
		merged = append(merged, fresh[i])
	}

	// Забронированные слоты, которых уже нет в сетке (прошедшие часы)
	for i := range persisted {
		if persisted[i].IsBooked && !seen[persisted[i].ID] {
			merged = append(merged, persisted[i])
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartTime.IsBefore(merged[j].StartTime)
	})

	return merged
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
