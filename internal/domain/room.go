package domain

// Room комната для обсуждений из каталога
type Room struct {
	ID          string
	DisplayName string
	Capacity    int // логическая вместимость; визуальных мест всегда VisualSeatCount
}

// FitsParty проверяет, что группа указанного размера помещается в комнату
func (r *Room) FitsParty(partySize int) bool {
	return partySize <= r.Capacity
}
