package get_day_capacity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

type LedgerService interface {
	DayCapacity(ctx context.Context, resourceID uuid.UUID, date time.Time) (*domain.DayCapacity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
