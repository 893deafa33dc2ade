package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/pkg/txmanager"
)

// Параметры повтора резервирования при конфликте сериализации
const (
	maxReserveAttempts  = 3
	reserveRetryBackoff = 50 * time.Millisecond
)

// Service учётная книга ёмкости: отвечает на вопросы о свободной ёмкости
// и защищает инвариант - сумма резерваций ни в один день не превышает
// объявленную ёмкость окна
type Service struct {
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса ёмкости
func NewService(
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// DayCapacity возвращает срез ёмкости ресурса на дату
// Дата без окна доступности дает нулевой срез, а не ошибку
func (s *Service) DayCapacity(ctx context.Context, resourceID uuid.UUID, date time.Time) (*domain.DayCapacity, error) {
	day := domain.NormalizeDate(date)

	periods, err := s.periodRepo.GetIntersectingRange(ctx, resourceID, day, day)
	if err != nil {
		s.logger.Error("DayCapacity: failed to get periods for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: DayCapacity - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetOverlappingRange(ctx, resourceID, day, day)
	if err != nil {
		s.logger.Error("DayCapacity: failed to get reservations for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: DayCapacity - repository error: %v", ErrInternal, err)
	}

	capacity, err := domain.CapacityOn(day, periods, reservations)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrityViolation) {
			s.logger.Error("DayCapacity: INTEGRITY FAULT for resource=%s: %v", resourceID, err)
			return nil, fmt.Errorf("%w: resource=%s: %v", ErrIntegrityViolation, resourceID, err)
		}
		return nil, fmt.Errorf("%w: DayCapacity - capacity computation: %v", ErrInternal, err)
	}

	return capacity, nil
}

// AvailableCapacity возвращает свободную ёмкость ресурса на дату
func (s *Service) AvailableCapacity(ctx context.Context, resourceID uuid.UUID, date time.Time) (float64, error) {
	capacity, err := s.DayCapacity(ctx, resourceID, date)
	if err != nil {
		return 0, err
	}
	return capacity.AvailableCapacity, nil
}

// IsRangeAvailable проверяет, что в каждый день диапазона [start, end]
// свободно не меньше required единиц ёмкости
// Проверка выполняется событийной разверткой, без перебора календарных дней
func (s *Service) IsRangeAvailable(ctx context.Context, resourceID uuid.UUID, start, end time.Time, required float64) (bool, error) {
	if !domain.ValidRange(start, end) {
		return false, ErrInvalidRange
	}
	if required <= 0 {
		return false, ErrInvalidRequest
	}

	minAvailable, _, err := s.rangeCapacity(ctx, resourceID, domain.NormalizeDate(start), domain.NormalizeDate(end))
	if err != nil {
		return false, err
	}

	return minAvailable >= required, nil
}

// Reserve атомарно резервирует amount единиц ёмкости на каждый день
// диапазона [start, end]
//
// Наивный паттерн "проверили доступность - сохранили" небезопасен: между
// проверкой и вставкой конкурентная резервация может занять ту же ёмкость.
// Поэтому проверка и вставка выполняются в одной SERIALIZABLE транзакции
// с блокировкой пересекающихся строк, а конфликт сериализации повторяется
// ограниченное число раз с паузой
func (s *Service) Reserve(ctx context.Context, resourceID, ownerRef uuid.UUID, start, end time.Time, amount float64) (*domain.Reservation, error) {
	if !domain.ValidRange(start, end) {
		return nil, ErrInvalidRange
	}
	if amount <= 0 {
		return nil, ErrInvalidRequest
	}

	startDate := domain.NormalizeDate(start)
	endDate := domain.NormalizeDate(end)

	s.logger.Info("Reserve: resource=%s, owner=%s, range=[%s..%s], amount=%.2f",
		resourceID, ownerRef, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), amount)

	var lastErr error

	for attempt := 1; attempt <= maxReserveAttempts; attempt++ {
		created, err := s.reserveOnce(ctx, resourceID, ownerRef, startDate, endDate, amount)
		if err == nil {
			s.logger.Info("Reserve: successfully created reservation id=%d for owner=%s", created.ID, ownerRef)
			return created, nil
		}

		if !txmanager.IsSerializationFailure(err) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("Reserve: serialization conflict for resource=%s (attempt %d/%d): %v",
			resourceID, attempt, maxReserveAttempts, err)

		if attempt < maxReserveAttempts {
			select {
			case <-time.After(time.Duration(attempt) * reserveRetryBackoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: Reserve - context cancelled: %v", ErrInternal, ctx.Err())
			}
		}
	}

	s.logger.Error("Reserve: retries exhausted for resource=%s, owner=%s: %v", resourceID, ownerRef, lastErr)
	return nil, fmt.Errorf("%w: resource=%s: %v", ErrReservationConflict, resourceID, lastErr)
}

// reserveOnce одна попытка резервирования: проверка покрытия и ёмкости
// плюс вставка в одной сериализуемой транзакции
func (s *Service) reserveOnce(ctx context.Context, resourceID, ownerRef uuid.UUID, start, end time.Time, amount float64) (*domain.Reservation, error) {
	var created *domain.Reservation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		periods, err := s.periodRepo.GetIntersectingRange(txCtx, resourceID, start, end)
		if err != nil {
			return fmt.Errorf("%w: Reserve - get periods: %v", ErrInternal, err)
		}

		// Блокируем пересекающиеся резервации (FOR UPDATE внутри транзакции)
		reservations, err := s.reservationRepo.GetOverlappingRange(txCtx, resourceID, start, end)
		if err != nil {
			return fmt.Errorf("%w: Reserve - get overlapping reservations: %v", ErrInternal, err)
		}

		minAvailable, covered, err := domain.RangeCapacity(start, end, periods, reservations)
		if err != nil {
			if errors.Is(err, domain.ErrIntegrityViolation) {
				s.logger.Error("Reserve: INTEGRITY FAULT for resource=%s: %v", resourceID, err)
				return fmt.Errorf("%w: resource=%s: %v", ErrIntegrityViolation, resourceID, err)
			}
			return fmt.Errorf("%w: Reserve - capacity computation: %v", ErrInternal, err)
		}

		if !covered {
			return ErrNoAvailabilityDeclared
		}

		if minAvailable < amount {
			s.logger.Warn("Reserve: insufficient capacity for resource=%s, available=%.2f, requested=%.2f",
				resourceID, minAvailable, amount)
			return ErrInsufficientCapacity
		}

		created, err = s.reservationRepo.Create(txCtx, &domain.Reservation{
			ResourceID:       resourceID,
			OwnerRef:         ownerRef,
			StartDate:        start,
			EndDate:          end,
			ReservedCapacity: amount,
		})
		if err != nil {
			return fmt.Errorf("%w: Reserve - create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// Release удаляет все резервации владельца (одной аренды)
// Идемпотентна: освобождение владельца без резерваций - no-op, не ошибка
// Удаление одним DELETE атомарно по владельцу
func (s *Service) Release(ctx context.Context, ownerRef uuid.UUID) (int64, error) {
	released, err := s.reservationRepo.DeleteByOwnerRef(ctx, ownerRef)
	if err != nil {
		s.logger.Error("Release: failed to delete reservations for owner=%s: %v", ownerRef, err)
		return 0, fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	if released == 0 {
		s.logger.Info("Release: no reservations for owner=%s, nothing to do", ownerRef)
	} else {
		s.logger.Info("Release: released %d reservations for owner=%s", released, ownerRef)
	}

	return released, nil
}

// OwnerReservations возвращает все резервации владельца
func (s *Service) OwnerReservations(ctx context.Context, ownerRef uuid.UUID) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.GetByOwnerRef(ctx, ownerRef)
	if err != nil {
		s.logger.Error("OwnerReservations: failed to get reservations for owner=%s: %v", ownerRef, err)
		return nil, fmt.Errorf("%w: OwnerReservations - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// rangeCapacity читает окна и резервации диапазона и вычисляет
// минимальную свободную ёмкость
func (s *Service) rangeCapacity(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (float64, bool, error) {
	periods, err := s.periodRepo.GetIntersectingRange(ctx, resourceID, start, end)
	if err != nil {
		s.logger.Error("rangeCapacity: failed to get periods for resource=%s: %v", resourceID, err)
		return 0, false, fmt.Errorf("%w: rangeCapacity - repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetOverlappingRange(ctx, resourceID, start, end)
	if err != nil {
		s.logger.Error("rangeCapacity: failed to get reservations for resource=%s: %v", resourceID, err)
		return 0, false, fmt.Errorf("%w: rangeCapacity - repository error: %v", ErrInternal, err)
	}

	minAvailable, covered, err := domain.RangeCapacity(start, end, periods, reservations)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrityViolation) {
			s.logger.Error("rangeCapacity: INTEGRITY FAULT for resource=%s: %v", resourceID, err)
			return 0, false, fmt.Errorf("%w: resource=%s: %v", ErrIntegrityViolation, resourceID, err)
		}
		return 0, false, fmt.Errorf("%w: rangeCapacity - capacity computation: %v", ErrInternal, err)
	}

	return minAvailable, covered, nil
}
