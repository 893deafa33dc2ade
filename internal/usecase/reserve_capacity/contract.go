package reserve_capacity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/catalogservice"
)

// Ledger интерфейс учётной книги ёмкости
type Ledger interface {
	Reserve(ctx context.Context, resourceID, ownerRef uuid.UUID, start, end time.Time, amount float64) (*domain.Reservation, error)
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
