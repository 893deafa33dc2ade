package periods

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/pkg/txmanager"
)

// Параметры повтора публикации при конфликте сериализации
const (
	maxPublishAttempts  = 3
	publishRetryBackoff = 50 * time.Millisecond
)

// Service управляет публикацией окон доступности
// Окна после публикации неизменяемы; пересечение окон одного ресурса
// запрещено, чтобы у каждой даты была ровно одна объявленная ёмкость
type Service struct {
	periodRepo PeriodRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(
	periodRepo PeriodRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		periodRepo: periodRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Publish публикует новое окно доступности ресурса
// Проверка пересечения и вставка выполняются в одной сериализуемой
// транзакции, чтобы две конкурентные публикации не создали
// пересекающиеся окна. Конфликт сериализации повторяется ограниченное
// число раз: после повтора проверка пересечения видит окно победителя
// и возвращает ErrPeriodOverlap вместо внутренней ошибки
func (s *Service) Publish(ctx context.Context, resourceID uuid.UUID, start, end time.Time, totalCapacity float64) (*domain.AvailabilityPeriod, error) {
	if !domain.ValidRange(start, end) {
		return nil, ErrInvalidRange
	}
	if totalCapacity < 0 {
		return nil, ErrInvalidCapacity
	}

	startDate := domain.NormalizeDate(start)
	endDate := domain.NormalizeDate(end)

	s.logger.Info("Publish: resource=%s, range=[%s..%s], capacity=%.2f",
		resourceID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), totalCapacity)

	var lastErr error

	for attempt := 1; attempt <= maxPublishAttempts; attempt++ {
		created, err := s.publishOnce(ctx, resourceID, startDate, endDate, totalCapacity)
		if err == nil {
			s.logger.Info("Publish: successfully created period id=%d for resource=%s", created.ID, resourceID)
			return created, nil
		}

		if !txmanager.IsSerializationFailure(err) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("Publish: serialization conflict for resource=%s (attempt %d/%d): %v",
			resourceID, attempt, maxPublishAttempts, err)

		if attempt < maxPublishAttempts {
			select {
			case <-time.After(time.Duration(attempt) * publishRetryBackoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: Publish - context cancelled: %v", ErrInternal, ctx.Err())
			}
		}
	}

	// Устойчивый конфликт сериализации означает конкурентную публикацию
	// на тот же диапазон
	s.logger.Error("Publish: retries exhausted for resource=%s: %v", resourceID, lastErr)
	return nil, fmt.Errorf("%w: resource=%s: %v", ErrPeriodOverlap, resourceID, lastErr)
}

// publishOnce одна попытка публикации: проверка пересечения и вставка
// в одной сериализуемой транзакции
func (s *Service) publishOnce(ctx context.Context, resourceID uuid.UUID, startDate, endDate time.Time, totalCapacity float64) (*domain.AvailabilityPeriod, error) {
	var created *domain.AvailabilityPeriod

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.periodRepo.GetIntersectingRange(txCtx, resourceID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("%w: Publish - get intersecting periods: %v", ErrInternal, err)
		}

		if len(existing) > 0 {
			s.logger.Warn("Publish: resource=%s already has %d periods intersecting [%s..%s]",
				resourceID, len(existing), startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
			return ErrPeriodOverlap
		}

		created, err = s.periodRepo.Create(txCtx, &domain.AvailabilityPeriod{
			ResourceID:    resourceID,
			StartDate:     startDate,
			EndDate:       endDate,
			TotalCapacity: totalCapacity,
		})
		if err != nil {
			return fmt.Errorf("%w: Publish - create period: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// List возвращает все окна доступности ресурса
func (s *Service) List(ctx context.Context, resourceID uuid.UUID) ([]*domain.AvailabilityPeriod, error) {
	periods, err := s.periodRepo.GetByResourceID(ctx, resourceID)
	if err != nil {
		s.logger.Error("List: failed to get periods for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return periods, nil
}
