package find_free_intervals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/catalogservice"
)

// Planner интерфейс планировщика свободных интервалов
type Planner interface {
	FindFreeIntervals(ctx context.Context, resourceID uuid.UUID, start, end time.Time, required float64) ([]domain.FreeInterval, error)
}

// CatalogServiceClient интерфейс клиента каталога ресурсов
type CatalogServiceClient interface {
	GetResource(ctx context.Context, resourceID uuid.UUID) (*catalogservice.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
