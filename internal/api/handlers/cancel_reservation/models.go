package cancel_reservation

import (
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	releaseSlot "github.com/discusszone/DZ-BookingService/internal/usecase/release_slot"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	RoomID string `json:"roomId"`
	Date   string `json:"date"` // "2026-08-28"
	SlotID string `json:"slotId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(actingUserID string, isPrivileged bool) (*releaseSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &releaseSlot.Request{
		RoomID:       r.RoomID,
		Date:         date,
		SlotID:       r.SlotID,
		ActingUserID: actingUserID,
		IsPrivileged: isPrivileged,
	}, nil
}
