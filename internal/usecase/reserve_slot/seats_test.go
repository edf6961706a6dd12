package reserve_slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

func TestAllocateSeats_Solo(t *testing.T) {
	room := &domain.Room{ID: "room1", DisplayName: "Discussion Room 1", Capacity: 8}
	slot := &domain.Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}

	alloc, err := allocateSeats(room, slot, "user-1", "Алиса", nil)
	require.NoError(t, err)

	assert.False(t, alloc.IsGroupBooking)
	require.Len(t, alloc.Occupants, 1)
	assert.Equal(t, "S1", alloc.Occupants[0].SeatID)
	assert.Equal(t, "Алиса", alloc.Occupants[0].DisplayName)
	assert.True(t, alloc.Occupants[0].IsPrimaryBooker)
}

func TestAllocateSeats_GroupInOrder(t *testing.T) {
	room := &domain.Room{ID: "room1", DisplayName: "Discussion Room 1", Capacity: 8}
	slot := &domain.Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}

	members := []domain.GroupMember{
		{Name: "Боб", ContactEmail: "bob@example.com"},
		{Name: "Карина", ContactEmail: "karina@example.com"},
	}

	alloc, err := allocateSeats(room, slot, "user-1", "Алиса", members)
	require.NoError(t, err)

	assert.True(t, alloc.IsGroupBooking)
	require.Len(t, alloc.Occupants, 3)

	// Бронирующий всегда на S1, участники в порядке добавления
	assert.Equal(t, "S1", alloc.Occupants[0].SeatID)
	assert.True(t, alloc.Occupants[0].IsPrimaryBooker)
	assert.Equal(t, "S2", alloc.Occupants[1].SeatID)
	assert.Equal(t, "Боб", alloc.Occupants[1].DisplayName)
	assert.False(t, alloc.Occupants[1].IsPrimaryBooker)
	assert.Equal(t, "S3", alloc.Occupants[2].SeatID)
	assert.Equal(t, "Карина", alloc.Occupants[2].DisplayName)
}

func TestAllocateSeats_AlreadyBooked(t *testing.T) {
	room := &domain.Room{ID: "room1", DisplayName: "Discussion Room 1", Capacity: 8}
	slot := &domain.Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}
	slot.ApplyBooking("user-2", "Денис", false, nil, nil)

	_, err := allocateSeats(room, slot, "user-1", "Алиса", nil)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestAllocateSeats_CapacityExceeded(t *testing.T) {
	room := &domain.Room{ID: "room1", DisplayName: "Discussion Room 1", Capacity: 2}
	slot := &domain.Slot{ID: "slot-room1-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}

	// Бронирующий + 2 участника = 3 человека при вместимости 2
	members := []domain.GroupMember{
		{Name: "Боб", ContactEmail: "bob@example.com"},
		{Name: "Карина", ContactEmail: "karina@example.com"},
	}

	_, err := allocateSeats(room, slot, "user-1", "Алиса", members)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestAllocateSeats_VisualSeatsTruncated(t *testing.T) {
	room := &domain.Room{ID: "room2", DisplayName: "Discussion Room 2", Capacity: 12}
	slot := &domain.Slot{ID: "slot-room2-2026-08-28-10", StartTime: "10:00", EndTime: "11:00"}

	// 11 участников + бронирующий = 12, помещаются в комнату,
	// но визуальных мест только 10
	members := make([]domain.GroupMember, 11)
	for i := range members {
		members[i] = domain.GroupMember{Name: "Гость", ContactEmail: "guest@example.com"}
	}

	alloc, err := allocateSeats(room, slot, "user-1", "Алиса", members)
	require.NoError(t, err)

	assert.Len(t, alloc.Occupants, domain.VisualSeatCount)
	assert.Equal(t, "S10", alloc.Occupants[len(alloc.Occupants)-1].SeatID)
}
