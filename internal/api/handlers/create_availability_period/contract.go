package create_availability_period

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

type PeriodsService interface {
	Publish(ctx context.Context, resourceID uuid.UUID, start, end time.Time, totalCapacity float64) (*domain.AvailabilityPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
