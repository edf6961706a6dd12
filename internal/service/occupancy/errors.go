package occupancy

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("occupancy.service: room not found")

	// ErrAccessDenied возвращается, когда пользователь запрашивает чужие бронирования
	ErrAccessDenied = errors.New("occupancy.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("occupancy.service: internal error")
)
