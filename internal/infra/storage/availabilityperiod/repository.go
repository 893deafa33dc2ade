package availabilityperiod

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

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
// Проверка на пересечение с уже объявленными окнами выполняется на уровне
// сервиса внутри транзакции; репозиторий только вставляет запись
func (r *Repository) Create(ctx context.Context, period *domain.AvailabilityPeriod) (*domain.AvailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_periods").
		Columns(
			"resource_id",
			"start_date",
			"end_date",
			"total_capacity",
		).
		Values(
			period.ResourceID,
			period.StartDate,
			period.EndDate,
			period.TotalCapacity,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&period.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time

	return period, nil
}

// GetByResourceID получает все окна доступности ресурса,
// отсортированные по дате начала
func (r *Repository) GetByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.AvailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"start_date",
		"end_date",
		"total_capacity",
		"created_at",
	).
		From("availability_periods").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByResourceID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPeriods(rows)
}

// GetIntersectingRange получает окна доступности ресурса, пересекающиеся
// с диапазоном дат [start, end] (обе границы включительно)
// Внутри транзакции добавляет FOR UPDATE, чтобы параллельная публикация
// окон или резервация не прошли по устаревшему снимку
func (r *Repository) GetIntersectingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"resource_id",
		"start_date",
		"end_date",
		"total_capacity",
		"created_at",
	).
		From("availability_periods").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPeriods(rows)
}

// scanPeriods сканирует результаты запроса в слайс окон доступности
func (r *Repository) scanPeriods(rows *sql.Rows) ([]*domain.AvailabilityPeriod, error) {
	periods := make([]*domain.AvailabilityPeriod, 0)

	for rows.Next() {
		var period domain.AvailabilityPeriod
		var createdAt sql.NullTime

		err := rows.Scan(
			&period.ID,
			&period.ResourceID,
			&period.StartDate,
			&period.EndDate,
			&period.TotalCapacity,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPeriods - scan row: %v", ErrScanRow, err)
		}

		period.StartDate = domain.NormalizeDate(period.StartDate)
		period.EndDate = domain.NormalizeDate(period.EndDate)
		period.CreatedAt = createdAt.Time

		periods = append(periods, &period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPeriods - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}
