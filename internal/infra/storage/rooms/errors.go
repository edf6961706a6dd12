package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена в каталоге
	ErrRoomNotFound = errors.New("rooms.repository: room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rooms.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rooms.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rooms.repository: failed to scan row")
)
