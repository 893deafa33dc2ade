package planner

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
	GetOverlappingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
