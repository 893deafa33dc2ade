package periods

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// PeriodRepository интерфейс репозитория окон доступности
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.AvailabilityPeriod) (*domain.AvailabilityPeriod, error)
	GetByResourceID(ctx context.Context, resourceID uuid.UUID) ([]*domain.AvailabilityPeriod, error)
	GetIntersectingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
