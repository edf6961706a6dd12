package domain

import (
	"time"

	"github.com/discusszone/DZ-BookingService/pkg/types"
)

// GroupMember участник группового бронирования.
// Порядок в списке определяет порядок рассадки.
type GroupMember struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
}

// Occupant человек, посаженный на визуальное место в забронированном слоте
type Occupant struct {
	SeatID          string `json:"seatId"`
	DisplayName     string `json:"displayName"`
	IsPrimaryBooker bool   `json:"isPrimaryBooker"`
}

// Slot часовое окно бронирования [StartTime, EndTime) одной комнаты на одну дату.
// Структура целиком сериализуется в JSONB внутри записи журнала (room_days),
// поэтому json-теги обязательны.
type Slot struct {
	ID                  string           `json:"id"`
	StartTime           types.TimeString `json:"startTime"`
	EndTime             types.TimeString `json:"endTime"`
	IsBooked            bool             `json:"isBooked"`
	BookedByIdentity    string           `json:"bookedByIdentity,omitempty"`
	BookedByDisplayName string           `json:"bookedByDisplayName,omitempty"`
	IsGroupBooking      bool             `json:"isGroupBooking,omitempty"`
	GroupMembers        []GroupMember    `json:"groupMembers,omitempty"`
	Occupants           []Occupant       `json:"occupants,omitempty"`
}

// PartySize полный размер группы: бронирующий + участники
func (s *Slot) PartySize() int {
	if !s.IsBooked {
		return 0
	}
	return 1 + len(s.GroupMembers)
}

// ContainsTime возвращает true, если момент now попадает в окно слота [start, end)
func (s *Slot) ContainsTime(now time.Time) bool {
	current := types.NewTimeString(now)
	// start <= current < end
	return !current.IsBefore(s.StartTime) && current.IsBefore(s.EndTime)
}

// StartsAfter возвращает true, если слот начинается строго позже момента now
func (s *Slot) StartsAfter(now time.Time) bool {
	return s.StartTime.IsAfter(types.NewTimeString(now))
}

// ApplyBooking переводит слот в состояние Booked с переданными полями бронирования.
// Единственный допустимый переход Unbooked -> Booked.
func (s *Slot) ApplyBooking(identity, displayName string, isGroup bool, members []GroupMember, occupants []Occupant) {
	s.IsBooked = true
	s.BookedByIdentity = identity
	s.BookedByDisplayName = displayName
	s.IsGroupBooking = isGroup
	s.GroupMembers = members
	s.Occupants = occupants
}

// ClearBooking полностью очищает поля бронирования (переход Booked -> Unbooked).
// После очистки слот неотличим от свежесгенерированного.
func (s *Slot) ClearBooking() {
	s.IsBooked = false
	s.BookedByIdentity = ""
	s.BookedByDisplayName = ""
	s.IsGroupBooking = false
	s.GroupMembers = nil
	s.Occupants = nil
}
