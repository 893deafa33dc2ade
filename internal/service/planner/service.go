package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// Service планировщик свободных интервалов: по диапазону запроса и требуемой
// ёмкости находит максимальные поддиапазоны, где ёмкости хватает каждый день
type Service struct {
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр планировщика
func NewService(
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// FindFreeIntervals находит свободные интервалы ресурса в диапазоне [start, end]
// с доступной ёмкостью не меньше required в каждый день
//
// Поиск ограничен объявленными окнами доступности: дни вне окон не попадают
// ни в один интервал. Внутри каждого окна работает развертка по датам-событиям
// (границы резерваций), а не перебор календарных дней
func (s *Service) FindFreeIntervals(ctx context.Context, resourceID uuid.UUID, start, end time.Time, required float64) ([]domain.FreeInterval, error) {
	if !domain.ValidRange(start, end) {
		return nil, ErrInvalidRange
	}
	if required <= 0 {
		return nil, ErrInvalidRequest
	}

	startDate := domain.NormalizeDate(start)
	endDate := domain.NormalizeDate(end)

	periods, err := s.periodRepo.GetIntersectingRange(ctx, resourceID, startDate, endDate)
	if err != nil {
		s.logger.Error("FindFreeIntervals: failed to get periods for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: FindFreeIntervals - repository error: %v", ErrInternal, err)
	}

	if len(periods) == 0 {
		s.logger.Info("FindFreeIntervals: no declared availability for resource=%s in [%s..%s]",
			resourceID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
		return []domain.FreeInterval{}, nil
	}

	reservations, err := s.reservationRepo.GetOverlappingRange(ctx, resourceID, startDate, endDate)
	if err != nil {
		s.logger.Error("FindFreeIntervals: failed to get reservations for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: FindFreeIntervals - repository error: %v", ErrInternal, err)
	}

	intervals := make([]domain.FreeInterval, 0)

	for _, period := range periods {
		periodIntervals, err := domain.SweepFreeIntervals(period, startDate, endDate, reservations, required)
		if err != nil {
			if errors.Is(err, domain.ErrIntegrityViolation) {
				s.logger.Error("FindFreeIntervals: INTEGRITY FAULT for resource=%s: %v", resourceID, err)
				return nil, fmt.Errorf("%w: resource=%s: %v", ErrIntegrityViolation, resourceID, err)
			}
			return nil, fmt.Errorf("%w: FindFreeIntervals - sweep failed: %v", ErrInternal, err)
		}
		intervals = append(intervals, periodIntervals...)
	}

	s.logger.Info("FindFreeIntervals: resource=%s, range=[%s..%s], required=%.2f -> %d intervals",
		resourceID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), required, len(intervals))

	return intervals, nil
}
