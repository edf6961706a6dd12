package reserve_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if req.UserIdentity == "" {
		return fmt.Errorf("%w: user identity is required", ErrInvalidInput)
	}
	if req.UserName == "" {
		return fmt.Errorf("%w: user display name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for i, member := range req.GroupMembers {
		if strings.TrimSpace(member.Name) == "" {
			return fmt.Errorf("%w: group member %d: name is required", ErrInvalidInput, i+1)
		}
		if !strings.Contains(member.ContactEmail, "@") {
			return fmt.Errorf("%w: group member %d: invalid contact email", ErrInvalidInput, i+1)
		}
	}

	return nil
}

// validateBookableDay проверяет политику "бронирование только на сегодня"
func validateBookableDay(date, now time.Time) error {
	if !domain.IsSameDay(date, now) {
		return ErrNotBookableDay
	}
	return nil
}
