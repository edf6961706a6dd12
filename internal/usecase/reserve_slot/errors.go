package reserve_slot

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("reserve_slot: room not found")

	// ErrSlotNotFound возвращается, когда слот отсутствует в сетке дня
	// (неизвестный ID или час слота уже начался)
	ErrSlotNotFound = errors.New("reserve_slot: slot not found in day grid")

	// ErrNotBookableDay возвращается при попытке бронировать не на сегодня
	ErrNotBookableDay = errors.New("reserve_slot: bookings are allowed for the current day only")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят на момент проверки
	ErrSlotAlreadyBooked = errors.New("reserve_slot: slot is already booked")

	// ErrCapacityExceeded возвращается, когда размер группы (включая бронирующего)
	// превышает вместимость комнаты
	ErrCapacityExceeded = errors.New("reserve_slot: party size exceeds room capacity")

	// ErrSlotConflict возвращается, когда атомарный коммит проиграл гонку:
	// слот заняли между проверкой и записью. Повторять без перечитывания нельзя.
	ErrSlotConflict = errors.New("reserve_slot: slot was booked concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
