package check_range_availability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LedgerService interface {
	IsRangeAvailable(ctx context.Context, resourceID uuid.UUID, start, end time.Time, required float64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
