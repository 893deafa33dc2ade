package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/RMS-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с резервациями ёмкости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию
// Вызывается только из сериализуемой транзакции резервирования:
// проверка ёмкости и вставка должны быть одним неделимым шагом,
// иначе check-then-save открывает гонку на двойное бронирование
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"resource_id",
			"owner_ref",
			"start_date",
			"end_date",
			"reserved_capacity",
		).
		Values(
			res.ResourceID,
			res.OwnerRef,
			res.StartDate,
			res.EndDate,
			res.ReservedCapacity,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"owner_ref",
		"start_date",
		"end_date",
		"reserved_capacity",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.ResourceID,
		&res.OwnerRef,
		&res.StartDate,
		&res.EndDate,
		&res.ReservedCapacity,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.StartDate = domain.NormalizeDate(res.StartDate)
	res.EndDate = domain.NormalizeDate(res.EndDate)
	res.CreatedAt = createdAt.Time

	return &res, nil
}

// GetByOwnerRef получает все резервации владельца (одной аренды),
// отсортированные по дате начала
func (r *Repository) GetByOwnerRef(ctx context.Context, ownerRef uuid.UUID) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"owner_ref",
		"start_date",
		"end_date",
		"reserved_capacity",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"owner_ref": ownerRef}).
		OrderBy("start_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerRef - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerRef - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetOverlappingRange получает резервации ресурса, пересекающиеся
// с диапазоном дат [start, end] (обе границы включительно)
//
// Внутри транзакции добавляет FOR UPDATE: резервирование блокирует
// пересекающиеся строки на время проверки ёмкости и вставки. Защита от
// фантомных вставок (строк, которых блокировка коснуться не может)
// обеспечивается уровнем изоляции SERIALIZABLE и повтором при конфликте
func (r *Repository) GetOverlappingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"resource_id",
		"owner_ref",
		"start_date",
		"end_date",
		"reserved_capacity",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// DeleteByOwnerRef удаляет все резервации владельца одним запросом
// Возвращает количество удаленных строк; 0 строк - не ошибка,
// повторное освобождение владельца без резерваций является no-op
func (r *Repository) DeleteByOwnerRef(ctx context.Context, ownerRef uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"owner_ref": ownerRef}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerRef - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerRef - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByOwnerRef - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.ResourceID,
			&res.OwnerRef,
			&res.StartDate,
			&res.EndDate,
			&res.ReservedCapacity,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.StartDate = domain.NormalizeDate(res.StartDate)
		res.EndDate = domain.NormalizeDate(res.EndDate)
		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
