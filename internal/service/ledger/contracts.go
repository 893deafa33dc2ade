package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// PeriodRepository интерфейс репозитория окон доступности
type PeriodRepository interface {
	GetIntersectingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByOwnerRef(ctx context.Context, ownerRef uuid.UUID) ([]*domain.Reservation, error)
	GetOverlappingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.Reservation, error)
	DeleteByOwnerRef(ctx context.Context, ownerRef uuid.UUID) (int64, error)
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
