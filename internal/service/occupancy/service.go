package occupancy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	roomsRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/rooms"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
	"github.com/discusszone/DZ-BookingService/internal/service/occupancy/models"
)

// Service read-сторона журнала бронирований: выбор отображаемого слота,
// схема рассадки, бронирования пользователя, дневная статистика.
// Ничего не пишет: единственные писатели журнала остаются в usecase-слое.
type Service struct {
	roomRepo     RoomRepository
	dayRepo      RoomDayRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(roomRepo RoomRepository, dayRepo RoomDayRepository, logger Logger) *Service {
	return &Service{
		roomRepo:     roomRepo,
		dayRepo:      dayRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListRooms возвращает каталог комнат
func (s *Service) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}
	return rooms, nil
}

// GetRoomOccupancy строит схему занятости комнаты на текущий момент.
// Слот для отображения выбирается по приоритету "идет сейчас" >
// "ближайший предстоящий"; если забронированных слотов нет, все места свободны.
func (s *Service) GetRoomOccupancy(ctx context.Context, roomID string) (*models.RoomOccupancyView, error) {
	now := s.timeProvider.Now()

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomOccupancy: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomOccupancy: failed to get room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	slots, err := s.mergedDay(ctx, room.ID, now)
	if err != nil {
		return nil, err
	}

	view := &models.RoomOccupancyView{
		RoomID:   room.ID,
		RoomName: room.DisplayName,
		Capacity: room.Capacity,
		Seats:    emptySeatMap(),
	}

	display := resolveDisplaySlot(slots, now)
	if display == nil {
		s.logger.Info("GetRoomOccupancy: room=%s has no display slot", room.ID)
		return view, nil
	}

	view.DisplaySlot = &models.DisplaySlotView{
		SlotID:              display.ID,
		StartTime:           display.StartTime.String(),
		EndTime:             display.EndTime.String(),
		BookedByDisplayName: display.BookedByDisplayName,
		IsGroupBooking:      display.IsGroupBooking,
		PartySize:           display.PartySize(),
		IsActiveNow:         display.ContainsTime(now),
	}

	occupantBySeat := make(map[string]domain.Occupant, len(display.Occupants))
	for _, occupant := range display.Occupants {
		occupantBySeat[occupant.SeatID] = occupant
	}

	for i := range view.Seats {
		if occupant, ok := occupantBySeat[view.Seats[i].SeatID]; ok {
			view.Seats[i].IsOccupied = true
			view.Seats[i].OccupantName = occupant.DisplayName
			view.Seats[i].IsPrimaryBooker = occupant.IsPrimaryBooker
		}
	}

	s.logger.Info("GetRoomOccupancy: room=%s, display slot=%s, occupants=%d",
		room.ID, display.ID, len(display.Occupants))

	return view, nil
}

// GetUserBookings возвращает бронирования пользователя на сегодня по всем комнатам
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.UserBookingsView, error) {
	now := s.timeProvider.Now()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	result := &models.UserBookingsView{
		UserID:   userID,
		Bookings: make([]models.UserBookingView, 0),
	}

	for _, room := range rooms {
		slots, err := s.mergedDay(ctx, room.ID, now)
		if err != nil {
			return nil, err
		}

		for i := range slots {
			slot := &slots[i]
			if !slot.IsBooked || slot.BookedByIdentity != userID {
				continue
			}
			result.Bookings = append(result.Bookings, models.UserBookingView{
				RoomID:         room.ID,
				RoomName:       room.DisplayName,
				Date:           now.Format(domain.DateFormat),
				SlotID:         slot.ID,
				StartTime:      slot.StartTime.String(),
				EndTime:        slot.EndTime.String(),
				IsGroupBooking: slot.IsGroupBooking,
				GroupMembers:   slot.GroupMembers,
				Occupants:      slot.Occupants,
			})
		}
	}

	s.logger.Info("GetUserBookings: user=%s has %d bookings today", userID, len(result.Bookings))
	return result, nil
}

// GetDailyStats считает дневную статистику занятости по всем комнатам.
// Знаменатель: полная сетка (SlotsPerDay на комнату) без усечения по времени,
// как на административной панели.
func (s *Service) GetDailyStats(ctx context.Context) (*models.DailyStatsView, error) {
	now := s.timeProvider.Now()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetDailyStats: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	totalSlots := len(rooms) * domain.SlotsPerDay
	bookedSlots := 0

	for _, room := range rooms {
		day, err := s.dayRepo.GetByRoomAndDay(ctx, room.ID, now)
		if err != nil {
			if errors.Is(err, roomdayRepo.ErrDayNotFound) {
				continue
			}
			s.logger.Error("GetDailyStats: failed to get day record for room=%s: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to get day record: %v", ErrInternal, err)
		}
		bookedSlots += day.BookedCount()
	}

	occupancy := 0.0
	if totalSlots > 0 {
		occupancy = float64(bookedSlots) / float64(totalSlots) * 100
	}

	return &models.DailyStatsView{
		Date:             now.Format(domain.DateFormat),
		RoomCount:        len(rooms),
		TotalSlots:       totalSlots,
		BookedSlots:      bookedSlots,
		OccupancyPercent: occupancy,
	}, nil
}

// mergedDay возвращает объединенное представление сегодняшнего дня комнаты
func (s *Service) mergedDay(ctx context.Context, roomID string, now time.Time) ([]domain.Slot, error) {
	fresh := domain.GenerateDaySlots(roomID, now, now)

	persisted, err := s.dayRepo.GetByRoomAndDay(ctx, roomID, now)
	if err != nil {
		if errors.Is(err, roomdayRepo.ErrDayNotFound) {
			return fresh, nil
		}
		s.logger.Error("mergedDay: failed to get day record for room=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get day record: %v", ErrInternal, err)
	}

	return domain.MergeSlots(fresh, persisted.Slots), nil
}

// emptySeatMap возвращает все 10 визуальных мест в свободном состоянии
func emptySeatMap() []models.SeatView {
	seats := make([]models.SeatView, 0, domain.VisualSeatCount)
	for _, seatID := range domain.SeatLayout {
		seats = append(seats, models.SeatView{SeatID: seatID})
	}
	return seats
}
