// Package models модели ответов read-стороны: схема рассадки,
// бронирования пользователя, дневная статистика.
package models

import "github.com/discusszone/DZ-BookingService/internal/domain"

// SeatView состояние одного визуального места на схеме комнаты
type SeatView struct {
	SeatID          string `json:"seatId"`
	IsOccupied      bool   `json:"isOccupied"`
	OccupantName    string `json:"occupantName,omitempty"`
	IsPrimaryBooker bool   `json:"isPrimaryBooker,omitempty"`
}

// DisplaySlotView выбранный для отображения слот
type DisplaySlotView struct {
	SlotID              string `json:"slotId"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	BookedByDisplayName string `json:"bookedByDisplayName"`
	IsGroupBooking      bool   `json:"isGroupBooking"`
	PartySize           int    `json:"partySize"`
	IsActiveNow         bool   `json:"isActiveNow"` // true: идет сейчас, false: ближайший предстоящий
}

// RoomOccupancyView схема занятости комнаты: авторитетный слот (если есть)
// и все 10 визуальных мест
type RoomOccupancyView struct {
	RoomID      string           `json:"roomId"`
	RoomName    string           `json:"roomName"`
	Capacity    int              `json:"capacity"`
	DisplaySlot *DisplaySlotView `json:"displaySlot,omitempty"`
	Seats       []SeatView       `json:"seats"`
}

// UserBookingView бронирование пользователя на сегодня
type UserBookingView struct {
	RoomID         string               `json:"roomId"`
	RoomName       string               `json:"roomName"`
	Date           string               `json:"date"`
	SlotID         string               `json:"slotId"`
	StartTime      string               `json:"startTime"`
	EndTime        string               `json:"endTime"`
	IsGroupBooking bool                 `json:"isGroupBooking"`
	GroupMembers   []domain.GroupMember `json:"groupMembers,omitempty"`
	Occupants      []domain.Occupant    `json:"occupants,omitempty"`
}

// UserBookingsView список бронирований пользователя
type UserBookingsView struct {
	UserID   string            `json:"userId"`
	Bookings []UserBookingView `json:"bookings"`
}

// DailyStatsView дневная статистика занятости по всем комнатам.
// Знаменатель: полная сетка дня (12 слотов на комнату) без усечения
// по текущему времени.
type DailyStatsView struct {
	Date             string  `json:"date"`
	RoomCount        int     `json:"roomCount"`
	TotalSlots       int     `json:"totalSlots"`
	BookedSlots      int     `json:"bookedSlots"`
	OccupancyPercent float64 `json:"occupancyPercent"`
}
