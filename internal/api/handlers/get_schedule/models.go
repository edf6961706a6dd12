package get_schedule

import (
	"github.com/discusszone/DZ-BookingService/internal/domain"
	getSchedule "github.com/discusszone/DZ-BookingService/internal/usecase/get_schedule"
)

// SlotResponse HTTP модель слота расписания
type SlotResponse struct {
	SlotID         string `json:"slotId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	IsBooked       bool   `json:"isBooked"`
	BookedBy       string `json:"bookedBy,omitempty"`
	IsGroupBooking bool   `json:"isGroupBooking,omitempty"`
	PartySize      int    `json:"partySize,omitempty"`
}

// ScheduleResponse HTTP модель расписания комнаты на дату
type ScheduleResponse struct {
	RoomID   string         `json:"roomId"`
	RoomName string         `json:"roomName"`
	Capacity int            `json:"capacity"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Capacity: resp.Capacity,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
	}
	for i := range resp.Slots {
		slot := &resp.Slots[i]
		out.Slots = append(out.Slots, SlotResponse{
			SlotID:         slot.ID,
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			IsBooked:       slot.IsBooked,
			BookedBy:       slot.BookedByDisplayName,
			IsGroupBooking: slot.IsGroupBooking,
			PartySize:      slot.PartySize(),
		})
	}
	return out
}
