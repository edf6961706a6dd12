package occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
	roomsRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/rooms"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (r *fakeRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, roomsRepo.ErrRoomNotFound
}

func (r *fakeRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	return r.rooms, nil
}

type fakeDayRepo struct {
	days map[string]*domain.RoomDay
}

func (r *fakeDayRepo) GetByRoomAndDay(ctx context.Context, roomID string, day time.Time) (*domain.RoomDay, error) {
	stored, ok := r.days[roomID]
	if !ok {
		return nil, roomdayRepo.ErrDayNotFound
	}
	return stored, nil
}

func defaultRooms() []*domain.Room {
	return []*domain.Room{
		{ID: "room1", DisplayName: "Discussion Room 1", Capacity: 8},
		{ID: "room2", DisplayName: "Discussion Room 2", Capacity: 12},
	}
}

func newTestService(dayRepo *fakeDayRepo, now time.Time) *Service {
	svc := NewService(&fakeRoomRepo{rooms: defaultRooms()}, dayRepo, &fakeLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func bookedDay(roomID string, now time.Time, hour int, identity, name string, members []domain.GroupMember, occupants []domain.Occupant) *domain.RoomDay {
	slots := domain.GenerateFullDayGrid(roomID, now)
	slots[hour-domain.OpeningHour].ApplyBooking(identity, name, len(members) > 0, members, occupants)
	return &domain.RoomDay{RoomID: roomID, Day: now, Slots: slots, Version: 1}
}

func TestGetRoomOccupancy_FreeRoom(t *testing.T) {
	now := at(10, 15)
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{}}, now)

	view, err := svc.GetRoomOccupancy(context.Background(), "room1")
	require.NoError(t, err)

	assert.Nil(t, view.DisplaySlot)
	require.Len(t, view.Seats, domain.VisualSeatCount)
	for _, seat := range view.Seats {
		assert.False(t, seat.IsOccupied)
	}
}

func TestGetRoomOccupancy_ActiveGroupBooking(t *testing.T) {
	now := at(10, 15)
	day := bookedDay("room1", now, 10, "user-1", "Алиса",
		[]domain.GroupMember{{Name: "Боб", ContactEmail: "bob@example.com"}},
		[]domain.Occupant{
			{SeatID: "S1", DisplayName: "Алиса", IsPrimaryBooker: true},
			{SeatID: "S2", DisplayName: "Боб"},
		},
	)
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{"room1": day}}, now)

	view, err := svc.GetRoomOccupancy(context.Background(), "room1")
	require.NoError(t, err)

	require.NotNil(t, view.DisplaySlot)
	assert.True(t, view.DisplaySlot.IsActiveNow)
	assert.Equal(t, "10:00", view.DisplaySlot.StartTime)
	assert.Equal(t, 2, view.DisplaySlot.PartySize)

	// S1 и S2 заняты, остальные 8 мест свободны
	require.Len(t, view.Seats, domain.VisualSeatCount)
	assert.True(t, view.Seats[0].IsOccupied)
	assert.True(t, view.Seats[0].IsPrimaryBooker)
	assert.Equal(t, "Алиса", view.Seats[0].OccupantName)
	assert.True(t, view.Seats[1].IsOccupied)
	assert.Equal(t, "Боб", view.Seats[1].OccupantName)
	for _, seat := range view.Seats[2:] {
		assert.False(t, seat.IsOccupied)
	}
}

func TestGetRoomOccupancy_UpcomingBooking(t *testing.T) {
	now := at(10, 15)
	day := bookedDay("room1", now, 12, "user-1", "Алиса", nil,
		[]domain.Occupant{{SeatID: "S1", DisplayName: "Алиса", IsPrimaryBooker: true}})
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{"room1": day}}, now)

	view, err := svc.GetRoomOccupancy(context.Background(), "room1")
	require.NoError(t, err)

	require.NotNil(t, view.DisplaySlot)
	assert.False(t, view.DisplaySlot.IsActiveNow)
	assert.Equal(t, "12:00", view.DisplaySlot.StartTime)
}

func TestGetRoomOccupancy_RoomNotFound(t *testing.T) {
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{}}, at(10, 0))

	_, err := svc.GetRoomOccupancy(context.Background(), "room99")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetUserBookings(t *testing.T) {
	now := at(9, 0)
	days := map[string]*domain.RoomDay{
		"room1": bookedDay("room1", now, 10, "user-1", "Алиса", nil, nil),
		"room2": bookedDay("room2", now, 11, "user-2", "Боб", nil, nil),
	}
	svc := newTestService(&fakeDayRepo{days: days}, now)

	view, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", view.UserID)
	require.Len(t, view.Bookings, 1)
	assert.Equal(t, "room1", view.Bookings[0].RoomID)
	assert.Equal(t, "10:00", view.Bookings[0].StartTime)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{}}, at(9, 0))

	view, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Bookings)
}

func TestGetDailyStats(t *testing.T) {
	now := at(14, 0)
	days := map[string]*domain.RoomDay{
		"room1": bookedDay("room1", now, 10, "user-1", "Алиса", nil, nil),
	}
	svc := newTestService(&fakeDayRepo{days: days}, now)

	stats, err := svc.GetDailyStats(context.Background())
	require.NoError(t, err)

	// Знаменатель: полная сетка обеих комнат, независимо от текущего часа
	assert.Equal(t, 2, stats.RoomCount)
	assert.Equal(t, 2*domain.SlotsPerDay, stats.TotalSlots)
	assert.Equal(t, 1, stats.BookedSlots)
	assert.InDelta(t, 100.0/24.0, stats.OccupancyPercent, 0.01)
}

func TestGetDailyStats_NoBookings(t *testing.T) {
	svc := newTestService(&fakeDayRepo{days: map[string]*domain.RoomDay{}}, at(14, 0))

	stats, err := svc.GetDailyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.BookedSlots)
	assert.Equal(t, 0.0, stats.OccupancyPercent)
}
