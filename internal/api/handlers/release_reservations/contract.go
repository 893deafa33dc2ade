package release_reservations

import (
	"context"

	"github.com/google/uuid"
)

type LedgerService interface {
	Release(ctx context.Context, ownerRef uuid.UUID) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
