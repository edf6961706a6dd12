package roomday

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/discusszone/DZ-BookingService/internal/domain"
	"github.com/discusszone/DZ-BookingService/pkg/dbmetrics"
	"github.com/discusszone/DZ-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

// Repository репозиторий журнала бронирований.
// Хранит состояние слотов комнаты на дату одной строкой:
// room_days(room_id, day, slots jsonb, version, created_at, updated_at).
// Слияние свежей сетки с сохраненной и вся бизнес-логика живут в usecase-слое;
// репозиторий отвечает только за чтение и атомарную запись.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRoomAndDay читает запись журнала для (roomID, day).
// Внутри транзакции строка блокируется через FOR UPDATE: это критическая
// секция операции резервирования. Возвращает ErrDayNotFound, если записи нет.
func (r *Repository) GetByRoomAndDay(ctx context.Context, roomID string, day time.Time) (*domain.RoomDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"room_id",
		"day",
		"slots",
		"version",
		"created_at",
		"updated_at",
	).
		From("room_days").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"day": day.Format(domain.DateFormat)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var (
		record    domain.RoomDay
		rawSlots  []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.RoomID,
		&record.Day,
		&rawSlots,
		&record.Version,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDay - scan day record: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(rawSlots, &record.Slots); err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDay - unmarshal slots: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

// Create создает запись журнала с version = 1.
// Возвращает ErrDayAlreadyExists, если конкурентная транзакция успела
// создать запись первой; для вызывающего это проигранная гонка.
func (r *Repository) Create(ctx context.Context, day *domain.RoomDay) (*domain.RoomDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rawSlots, err := json.Marshal(day.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal slots: %v", ErrMarshalSlots, err)
	}

	query, args, err := psqlbuilder.Insert("room_days").
		Columns(
			"room_id",
			"day",
			"slots",
			"version",
		).
		Values(
			day.RoomID,
			day.Day.Format(domain.DateFormat),
			rawSlots,
			1,
		).
		Suffix("RETURNING version, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.Version,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDayAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return day, nil
}

// UpdateSlots перезаписывает слоты записи журнала целиком с compare-and-swap
// по версии. Возвращает ErrVersionConflict, если запись изменилась после
// чтения вызывающей стороной: проигранная гонка, не затирать победителя.
func (r *Repository) UpdateSlots(ctx context.Context, roomID string, day time.Time, slots []domain.Slot, expectedVersion int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rawSlots, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - marshal slots: %v", ErrMarshalSlots, err)
	}

	query, args, err := psqlbuilder.Update("room_days").
		Set("slots", rawSlots).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"day": day.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"version": expectedVersion}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка является нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
