package create_reservation

import (
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	reserveSlot "github.com/discusszone/DZ-BookingService/internal/usecase/reserve_slot"
)

// GroupMemberPayload участник группового бронирования в HTTP запросе
type GroupMemberPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID       string               `json:"roomId"`
	Date         string               `json:"date"` // "2026-08-28"
	SlotID       string               `json:"slotId"`
	GroupMembers []GroupMemberPayload `json:"groupMembers,omitempty"`
}

// OccupantPayload место и посаженный на него человек в HTTP ответе
type OccupantPayload struct {
	SeatID          string `json:"seatId"`
	DisplayName     string `json:"displayName"`
	IsPrimaryBooker bool   `json:"isPrimaryBooker"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	RoomID         string            `json:"roomId"`
	RoomName       string            `json:"roomName"`
	Capacity       int               `json:"capacity"`
	Date           string            `json:"date"`
	SlotID         string            `json:"slotId"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	BookedBy       string            `json:"bookedBy"`
	IsGroupBooking bool              `json:"isGroupBooking"`
	PartySize      int               `json:"partySize"`
	Occupants      []OccupantPayload `json:"occupants"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Идентичность бронирующего приходит из заголовков, а не из тела.
func (r *CreateReservationRequest) ToUseCaseRequest(userIdentity, userName string) (*reserveSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	members := make([]domain.GroupMember, 0, len(r.GroupMembers))
	for _, m := range r.GroupMembers {
		members = append(members, domain.GroupMember{
			Name:         m.Name,
			ContactEmail: m.Email,
		})
	}

	return &reserveSlot.Request{
		RoomID:       r.RoomID,
		Date:         date,
		SlotID:       r.SlotID,
		UserIdentity: userIdentity,
		UserName:     userName,
		GroupMembers: members,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReservationResponse {
	slot := resp.Slot

	occupants := make([]OccupantPayload, 0, len(slot.Occupants))
	for _, o := range slot.Occupants {
		occupants = append(occupants, OccupantPayload{
			SeatID:          o.SeatID,
			DisplayName:     o.DisplayName,
			IsPrimaryBooker: o.IsPrimaryBooker,
		})
	}

	return &ReservationResponse{
		RoomID:         resp.RoomID,
		RoomName:       resp.RoomName,
		Capacity:       resp.Capacity,
		Date:           resp.Date.Format(domain.DateFormat),
		SlotID:         slot.ID,
		StartTime:      slot.StartTime.String(),
		EndTime:        slot.EndTime.String(),
		BookedBy:       slot.BookedByDisplayName,
		IsGroupBooking: slot.IsGroupBooking,
		PartySize:      slot.PartySize(),
		Occupants:      occupants,
	}
}
