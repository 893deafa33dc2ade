package get_availability_report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/service/projection/models"
)

type ProjectionService interface {
	Project(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*models.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
