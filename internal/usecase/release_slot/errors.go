package release_slot

import "errors"

var (
	// ErrReservationNotFound возвращается, когда слот не существует
	// или не забронирован, отменять нечего
	ErrReservationNotFound = errors.New("release_slot: reservation not found")

	// ErrAccessDenied возвращается, когда непривилегированный пользователь
	// пытается отменить чужое бронирование
	ErrAccessDenied = errors.New("release_slot: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
