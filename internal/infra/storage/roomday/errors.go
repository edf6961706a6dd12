package roomday

import "errors"

var (
	// ErrDayNotFound возвращается, когда для (комната, дата) еще нет записи журнала
	ErrDayNotFound = errors.New("roomday.repository: day record not found")

	// ErrVersionConflict возвращается, когда compare-and-swap по версии не прошел:
	// запись была изменена конкурентной транзакцией
	ErrVersionConflict = errors.New("roomday.repository: version conflict")

	// ErrDayAlreadyExists возвращается при попытке создать уже существующую запись
	ErrDayAlreadyExists = errors.New("roomday.repository: day record already exists")

	// ErrMarshalSlots возвращается при ошибке сериализации слотов в JSONB
	ErrMarshalSlots = errors.New("roomday.repository: failed to marshal slots")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roomday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roomday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roomday.repository: failed to scan row")
)
