package get_rooms

import "github.com/discusszone/DZ-BookingService/internal/domain"

// RoomResponse HTTP модель комнаты
type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// RoomsListResponse HTTP модель каталога комнат
type RoomsListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRooms конвертирует доменные комнаты в HTTP response
func FromDomainRooms(rooms []*domain.Room) *RoomsListResponse {
	resp := &RoomsListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:       room.ID,
			Name:     room.DisplayName,
			Capacity: room.Capacity,
		})
	}
	return resp
}
