package projection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/rentalservice"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/planner"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/projection/models"
)

// Service строит отчёт о доступности ресурса для отображающих коллабораторов
// Слой только читает и компонует: вся критичная для корректности логика
// остается в учётной книге и планировщике
type Service struct {
	periodRepo      PeriodRepository
	reservationRepo ReservationRepository
	planner         Planner
	rentalClient    RentalServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(
	periodRepo PeriodRepository,
	reservationRepo ReservationRepository,
	planner Planner,
	rentalClient RentalServiceClient,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:      periodRepo,
		reservationRepo: reservationRepo,
		planner:         planner,
		rentalClient:    rentalClient,
		logger:          logger,
	}
}

// Project строит отчёт о доступности ресурса на диапазон [start, end]
//
// Классификация статуса:
// - NO_DATA: ни одно окно доступности не пересекается с диапазоном
// - UNAVAILABLE: планировщик не нашел интервалов даже при требовании в 1 единицу
// - AVAILABLE: хотя бы один интервал полностью свободен
// - PARTIAL: всё остальное
func (s *Service) Project(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*models.Report, error) {
	if !domain.ValidRange(start, end) {
		return nil, ErrInvalidRange
	}

	startDate := domain.NormalizeDate(start)
	endDate := domain.NormalizeDate(end)

	s.logger.Info("Project: resource=%s, range=[%s..%s]",
		resourceID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	report := &models.Report{
		ResourceID:      resourceID,
		StartDate:       startDate.Format(domain.DateFormat),
		EndDate:         endDate.Format(domain.DateFormat),
		FreePeriods:     []models.FreePeriod{},
		ReservedPeriods: []models.ReservedPeriod{},
	}

	periods, err := s.periodRepo.GetIntersectingRange(ctx, resourceID, startDate, endDate)
	if err != nil {
		s.logger.Error("Project: failed to get periods for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Project - repository error: %v", ErrInternal, err)
	}

	if len(periods) == 0 {
		report.Status = string(domain.StatusNoData)
		return report, nil
	}

	freeIntervals, err := s.planner.FindFreeIntervals(ctx, resourceID, startDate, endDate, domain.MinProjectionCapacity)
	if err != nil {
		if errors.Is(err, planner.ErrIntegrityViolation) {
			s.logger.Error("Project: INTEGRITY FAULT for resource=%s: %v", resourceID, err)
			return nil, fmt.Errorf("%w: resource=%s: %v", ErrIntegrityViolation, resourceID, err)
		}
		s.logger.Error("Project: planner failed for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Project - planner error: %v", ErrInternal, err)
	}

	for _, fi := range freeIntervals {
		report.FreePeriods = append(report.FreePeriods, models.FromFreeInterval(fi))
	}

	reservations, err := s.reservationRepo.GetOverlappingRange(ctx, resourceID, startDate, endDate)
	if err != nil {
		s.logger.Error("Project: failed to get reservations for resource=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Project - repository error: %v", ErrInternal, err)
	}

	for _, res := range reservations {
		report.ReservedPeriods = append(report.ReservedPeriods,
			models.FromReservation(res, startDate, endDate, s.renterName(ctx, res.OwnerRef)))
	}

	report.Status = string(classifyStatus(freeIntervals))

	s.logger.Info("Project: resource=%s -> status=%s, free=%d, reserved=%d",
		resourceID, report.Status, len(report.FreePeriods), len(report.ReservedPeriods))

	return report, nil
}

// renterName получает отображаемое имя арендатора
// При недоступности rental-workflow сервиса отчёт строится без имени
func (s *Service) renterName(ctx context.Context, ownerRef uuid.UUID) *string {
	rental, err := s.rentalClient.GetRentalWithGracefulDegradation(ctx, ownerRef)
	if err != nil {
		if errors.Is(err, rentalservice.ErrServiceDegraded) {
			s.logger.Warn("Project: rental lookup degraded for owner=%s", ownerRef)
		} else {
			s.logger.Warn("Project: rental lookup failed for owner=%s: %v", ownerRef, err)
		}
		return nil
	}
	return &rental.RenterName
}

// classifyStatus классифицирует доступность по найденным свободным интервалам
func classifyStatus(freeIntervals []domain.FreeInterval) domain.AvailabilityStatus {
	if len(freeIntervals) == 0 {
		return domain.StatusUnavailable
	}

	for _, fi := range freeIntervals {
		if fi.IsFullyAvailable {
			return domain.StatusAvailable
		}
	}

	return domain.StatusPartial
}
