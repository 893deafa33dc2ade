package find_free_intervals

import (
	"context"

	findFreeIntervals "github.com/m04kA/RMS-AvailabilityService/internal/usecase/find_free_intervals"
)

type FindFreeIntervalsUseCase interface {
	Execute(ctx context.Context, req *findFreeIntervals.Request) (*findFreeIntervals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
