package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_PartySize(t *testing.T) {
	slot := Slot{StartTime: "10:00", EndTime: "11:00"}
	assert.Equal(t, 0, slot.PartySize())

	slot.ApplyBooking("user-1", "Алиса", false, nil, nil)
	assert.Equal(t, 1, slot.PartySize())

	slot.ClearBooking()
	slot.ApplyBooking("user-1", "Алиса", true, []GroupMember{
		{Name: "Боб", ContactEmail: "bob@example.com"},
		{Name: "Карина", ContactEmail: "karina@example.com"},
	}, nil)
	assert.Equal(t, 3, slot.PartySize())
}

func TestSlot_ContainsTime(t *testing.T) {
	slot := Slot{StartTime: "10:00", EndTime: "11:00"}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 8, 28, hour, minute, 0, 0, time.UTC)
	}

	assert.True(t, slot.ContainsTime(at(10, 0)))
	assert.True(t, slot.ContainsTime(at(10, 59)))
	assert.False(t, slot.ContainsTime(at(11, 0))) // правая граница не входит
	assert.False(t, slot.ContainsTime(at(9, 59)))

	assert.True(t, slot.StartsAfter(at(9, 30)))
	assert.False(t, slot.StartsAfter(at(10, 0)))
}

func TestSlot_ClearBooking(t *testing.T) {
	slot := Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}
	slot.ApplyBooking("user-1", "Алиса", true,
		[]GroupMember{{Name: "Боб", ContactEmail: "bob@example.com"}},
		[]Occupant{
			{SeatID: "S1", DisplayName: "Алиса", IsPrimaryBooker: true},
			{SeatID: "S2", DisplayName: "Боб"},
		},
	)

	slot.ClearBooking()

	// После отмены слот неотличим от свежесгенерированного
	assert.Equal(t, Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}, slot)
}
