package release_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
)

type fakeLogger struct{}

func (l *fakeLogger) Info(format string, v ...interface{})  {}
func (l *fakeLogger) Warn(format string, v ...interface{})  {}
func (l *fakeLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeDayRepo struct {
	day     *domain.RoomDay
	updated []domain.Slot
}

func (r *fakeDayRepo) GetByRoomAndDay(ctx context.Context, roomID string, day time.Time) (*domain.RoomDay, error) {
	if r.day == nil {
		return nil, roomdayRepo.ErrDayNotFound
	}
	out := *r.day
	out.Slots = make([]domain.Slot, len(r.day.Slots))
	copy(out.Slots, r.day.Slots)
	return &out, nil
}

func (r *fakeDayRepo) UpdateSlots(ctx context.Context, roomID string, day time.Time, slots []domain.Slot, expectedVersion int64) error {
	r.updated = make([]domain.Slot, len(slots))
	copy(r.updated, slots)
	return nil
}

func testDay() *domain.RoomDay {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	slots := domain.GenerateFullDayGrid("room1", now)
	slots[2].ApplyBooking("user-1", "Алиса", false, nil, []domain.Occupant{
		{SeatID: "S1", DisplayName: "Алиса", IsPrimaryBooker: true},
	})
	return &domain.RoomDay{RoomID: "room1", Day: now, Slots: slots, Version: 1}
}

func testRequest(actingUser string, privileged bool) *Request {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	return &Request{
		RoomID:       "room1",
		Date:         now,
		SlotID:       domain.SlotID("room1", now, 10),
		ActingUserID: actingUser,
		IsPrivileged: privileged,
	}
}

func TestExecute_OwnerCancels(t *testing.T) {
	repo := &fakeDayRepo{day: testDay()}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakeLogger{})

	err := uc.Execute(context.Background(), testRequest("user-1", false))
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	for _, slot := range repo.updated {
		assert.False(t, slot.IsBooked)
		assert.Empty(t, slot.Occupants)
	}
}

func TestExecute_ForeignBookingDenied(t *testing.T) {
	repo := &fakeDayRepo{day: testDay()}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakeLogger{})

	err := uc.Execute(context.Background(), testRequest("user-2", false))
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestExecute_AdminCancelsAnyBooking(t *testing.T) {
	repo := &fakeDayRepo{day: testDay()}
	uc := NewUseCase(repo, &fakeTxManager{}, &fakeLogger{})

	err := uc.Execute(context.Background(), testRequest("admin-1", true))
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	t.Run("no day record", func(t *testing.T) {
		uc := NewUseCase(&fakeDayRepo{}, &fakeTxManager{}, &fakeLogger{})
		err := uc.Execute(context.Background(), testRequest("user-1", false))
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("slot not booked", func(t *testing.T) {
		repo := &fakeDayRepo{day: testDay()}
		uc := NewUseCase(repo, &fakeTxManager{}, &fakeLogger{})

		req := testRequest("user-1", false)
		req.SlotID = domain.SlotID("room1", req.Date, 15)
		err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("unknown slot id", func(t *testing.T) {
		repo := &fakeDayRepo{day: testDay()}
		uc := NewUseCase(repo, &fakeTxManager{}, &fakeLogger{})

		req := testRequest("user-1", false)
		req.SlotID = "slot-room1-2026-08-28-99"
		err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeDayRepo{}, &fakeTxManager{}, &fakeLogger{})

	req := testRequest("", false)
	err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
