package get_availability_periods

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

type PeriodsService interface {
	List(ctx context.Context, resourceID uuid.UUID) ([]*domain.AvailabilityPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
