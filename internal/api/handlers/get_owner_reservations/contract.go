package get_owner_reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

type LedgerService interface {
	OwnerReservations(ctx context.Context, ownerRef uuid.UUID) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
