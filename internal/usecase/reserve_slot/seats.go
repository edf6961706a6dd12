package reserve_slot

import (
	"github.com/discusszone/DZ-BookingService/internal/domain"
)

// allocation результат чистого распределения мест.
// Коммит результата в журнал выполняется отдельным шагом (см. usecase.go): проверки
// повторяются атомарно на коммите, т.к. состояние слота могло устареть.
type allocation struct {
	IsGroupBooking bool
	Occupants      []domain.Occupant
}

// allocateSeats валидирует запрос против вместимости комнаты и распределяет
// людей по визуальным местам. Чистая функция без побочных эффектов.
//
// Порядок проверок фиксирован, первая ошибка выигрывает:
//  1. слот уже занят -> ErrSlotAlreadyBooked;
//  2. группа не помещается в комнату -> ErrCapacityExceeded
//     (вместимость считает и самого бронирующего).
//
// Рассадка: бронирующий всегда на S1, участники группы на следующих
// местах в порядке добавления. Участники сверх 10 визуальных мест
// учитываются в размере группы, но в Occupants не попадают: это
// усечение отображения, а не отказ в бронировании.
func allocateSeats(room *domain.Room, slot *domain.Slot, identity, displayName string, members []domain.GroupMember) (*allocation, error) {
	if slot.IsBooked {
		return nil, ErrSlotAlreadyBooked
	}

	partySize := 1 + len(members)
	if !room.FitsParty(partySize) {
		return nil, ErrCapacityExceeded
	}

	visualCount := partySize
	if visualCount > domain.VisualSeatCount {
		visualCount = domain.VisualSeatCount
	}

	occupants := make([]domain.Occupant, 0, visualCount)
	occupants = append(occupants, domain.Occupant{
		SeatID:          domain.SeatLayout[0],
		DisplayName:     displayName,
		IsPrimaryBooker: true,
	})

	for i, member := range members {
		seatIndex := i + 1
		if seatIndex >= domain.VisualSeatCount {
			break
		}
		occupants = append(occupants, domain.Occupant{
			SeatID:      domain.SeatLayout[seatIndex],
			DisplayName: member.Name,
		})
	}

	return &allocation{
		IsGroupBooking: len(members) > 0,
		Occupants:      occupants,
	}, nil
}
