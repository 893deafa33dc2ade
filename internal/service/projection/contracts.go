package projection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/rentalservice"
)

// PeriodRepository интерфейс репозитория окон доступности
type PeriodRepository interface {
	GetIntersectingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetOverlappingRange(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.Reservation, error)
}

// Planner интерфейс планировщика свободных интервалов
type Planner interface {
	FindFreeIntervals(ctx context.Context, resourceID uuid.UUID, start, end time.Time, required float64) ([]domain.FreeInterval, error)
}

// RentalServiceClient интерфейс клиента rental-workflow сервиса
type RentalServiceClient interface {
	GetRentalWithGracefulDegradation(ctx context.Context, ownerRef uuid.UUID) (*rentalservice.Rental, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
