package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discusszone/DZ-BookingService/pkg/types"
)

func date(hour, minute int) time.Time {
	return time.Date(2026, 8, 28, hour, minute, 0, 0, time.UTC)
}

func TestSlotID(t *testing.T) {
	day := date(0, 0)
	assert.Equal(t, "slot-room1-2026-08-28-09", SlotID("room1", day, 9))

	// Детерминированность: повторная генерация дает тот же ID
	assert.Equal(t, SlotID("room1", day, 9), SlotID("room1", day, 9))

	// Разные комнаты на одном часе не конфликтуют
	assert.NotEqual(t, SlotID("room1", day, 9), SlotID("room2", day, 9))
}

func TestGenerateDaySlots(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantCount int
		wantFirst types.TimeString
	}{
		{name: "before opening", now: date(6, 30), wantCount: 12, wantFirst: "08:00"},
		{name: "exactly at opening", now: date(8, 0), wantCount: 12, wantFirst: "08:00"},
		{name: "on the hour includes current hour", now: date(10, 0), wantCount: 10, wantFirst: "10:00"},
		{name: "mid hour starts from next hour", now: date(8, 15), wantCount: 11, wantFirst: "09:00"},
		{name: "last bookable hour", now: date(19, 0), wantCount: 1, wantFirst: "19:00"},
		{name: "after closing", now: date(20, 0), wantCount: 0},
		{name: "late evening", now: date(22, 45), wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateDaySlots("room1", tt.now, tt.now)
			require.Len(t, slots, tt.wantCount)
			if tt.wantCount == 0 {
				return
			}
			assert.Equal(t, tt.wantFirst, slots[0].StartTime)
		})
	}
}

func TestGenerateDaySlots_OtherDayIsEmpty(t *testing.T) {
	now := date(9, 0)
	tomorrow := now.AddDate(0, 0, 1)
	yesterday := now.AddDate(0, 0, -1)

	assert.Empty(t, GenerateDaySlots("room1", tomorrow, now))
	assert.Empty(t, GenerateDaySlots("room1", yesterday, now))
}

func TestGenerateDaySlots_Contiguous(t *testing.T) {
	now := date(7, 0)
	slots := GenerateDaySlots("room1", now, now)
	require.Len(t, slots, SlotsPerDay)

	for i := 0; i < len(slots)-1; i++ {
		// Конец каждого слота совпадает с началом следующего
		assert.Equal(t, slots[i].EndTime, slots[i+1].StartTime)
		assert.False(t, slots[i].IsBooked)
	}
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1].EndTime)
}

func TestGenerateFullDayGrid(t *testing.T) {
	slots := GenerateFullDayGrid("room1", date(15, 30))
	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1].EndTime)
}

func TestMergeSlots(t *testing.T) {
	now := date(10, 0)
	fresh := GenerateDaySlots("room1", now, now) // 10:00 .. 20:00

	booked := fresh[1]
	booked.ApplyBooking("user-42", "Алиса", false, nil, []Occupant{
		{SeatID: "S1", DisplayName: "Алиса", IsPrimaryBooker: true},
	})

	merged := MergeSlots(fresh, []Slot{booked})
	require.Len(t, merged, len(fresh))

	assert.True(t, merged[1].IsBooked)
	assert.Equal(t, "user-42", merged[1].BookedByIdentity)
	assert.False(t, merged[0].IsBooked)
}

func TestMergeSlots_KeepsBookedSlotOutsideGrid(t *testing.T) {
	// Бронирование на 09:00 сделано утром; к 09:30 усеченная сетка
	// начинается с 10:00, но запись о бронировании должна сохраниться.
	now := date(9, 30)
	fresh := GenerateDaySlots("room1", now, now)
	require.Equal(t, types.TimeString("10:00"), fresh[0].StartTime)

	morning := Slot{
		ID:        SlotID("room1", now, 9),
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	morning.ApplyBooking("user-42", "Алиса", false, nil, nil)

	unbookedPast := Slot{
		ID:        SlotID("room1", now, 8),
		StartTime: "08:00",
		EndTime:   "09:00",
	}

	merged := MergeSlots(fresh, []Slot{morning, unbookedPast})
	require.Len(t, merged, len(fresh)+1)

	// Результат упорядочен, выпавший забронированный слот встал первым
	assert.Equal(t, morning.ID, merged[0].ID)
	assert.True(t, merged[0].IsBooked)

	// Незабронированный прошедший слот отброшен
	for _, s := range merged {
		assert.NotEqual(t, unbookedPast.ID, s.ID)
	}
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(date(0, 0), date(23, 59)))
	assert.False(t, IsSameDay(date(12, 0), date(12, 0).AddDate(0, 0, 1)))
}

func TestIsDateInPast(t *testing.T) {
	now := date(12, 0)
	assert.True(t, IsDateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, IsDateInPast(now, now))
	assert.False(t, IsDateInPast(now.AddDate(0, 0, 1), now))
}
