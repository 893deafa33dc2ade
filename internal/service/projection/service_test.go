package projection

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/rentalservice"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/planner"
	"github.com/m04kA/RMS-AvailabilityService/pkg/ptr"
)

type stubPeriodRepo struct {
	periods []*domain.AvailabilityPeriod
}

func (r *stubPeriodRepo) GetIntersectingRange(_ context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error) {
	out := make([]*domain.AvailabilityPeriod, 0)
	for _, p := range r.periods {
		if p.ResourceID == resourceID && p.Overlaps(start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubReservationRepo struct {
	reservations []*domain.Reservation
}

func (r *stubReservationRepo) GetOverlappingRange(_ context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.ResourceID == resourceID && res.Overlaps(start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

type stubPlanner struct {
	intervals []domain.FreeInterval
	err       error
}

func (p *stubPlanner) FindFreeIntervals(context.Context, uuid.UUID, time.Time, time.Time, float64) ([]domain.FreeInterval, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.intervals, nil
}

type stubRentalClient struct {
	rentals  map[uuid.UUID]*rentalservice.Rental
	degraded bool
}

func (c *stubRentalClient) GetRentalWithGracefulDegradation(_ context.Context, ownerRef uuid.UUID) (*rentalservice.Rental, error) {
	if c.degraded {
		return nil, rentalservice.ErrServiceDegraded
	}
	rental, ok := c.rentals[ownerRef]
	if !ok {
		return nil, rentalservice.ErrRentalNotFound
	}
	return rental, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProject(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	period := &domain.AvailabilityPeriod{
		ID:            1,
		ResourceID:    resourceID,
		StartDate:     date(2026, 1, 1),
		EndDate:       date(2026, 1, 31),
		TotalCapacity: 10,
	}

	t.Run("no windows means NO_DATA", func(t *testing.T) {
		svc := NewService(&stubPeriodRepo{}, &stubReservationRepo{}, &stubPlanner{}, &stubRentalClient{}, nopLogger{})

		report, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusNoData), report.Status)
		assert.Empty(t, report.FreePeriods)
		assert.Empty(t, report.ReservedPeriods)
	})

	t.Run("fully free interval means AVAILABLE", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{},
			&stubPlanner{intervals: []domain.FreeInterval{
				{StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 10), MinAvailableCapacity: 10, IsFullyAvailable: true},
			}},
			&stubRentalClient{},
			nopLogger{},
		)

		report, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusAvailable), report.Status)
		require.Len(t, report.FreePeriods, 1)
		assert.Equal(t, "2026-01-01", report.FreePeriods[0].StartDate)
		assert.Equal(t, "2026-01-10", report.FreePeriods[0].EndDate)
	})

	t.Run("partially booked means PARTIAL", func(t *testing.T) {
		ownerRef := uuid.New()

		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{reservations: []*domain.Reservation{
				{
					ResourceID:       resourceID,
					OwnerRef:         ownerRef,
					StartDate:        date(2025, 12, 28),
					EndDate:          date(2026, 1, 5),
					ReservedCapacity: 4,
				},
			}},
			&stubPlanner{intervals: []domain.FreeInterval{
				{StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 10), MinAvailableCapacity: 6, IsFullyAvailable: false},
			}},
			&stubRentalClient{rentals: map[uuid.UUID]*rentalservice.Rental{
				ownerRef: {Ref: ownerRef, RenterName: "Анна П.", Status: "CONFIRMED"},
			}},
			nopLogger{},
		)

		report, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusPartial), report.Status)

		require.Len(t, report.ReservedPeriods, 1)
		rp := report.ReservedPeriods[0]
		// Резервация обрезана по диапазону отчёта
		assert.Equal(t, "2026-01-01", rp.StartDate)
		assert.Equal(t, "2026-01-05", rp.EndDate)
		assert.Equal(t, 4.0, rp.ReservedCapacity)
		assert.Equal(t, ptr.Ptr("Анна П."), rp.RenterName)
	})

	t.Run("no free intervals means UNAVAILABLE", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{},
			&stubPlanner{},
			&stubRentalClient{},
			nopLogger{},
		)

		report, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusUnavailable), report.Status)
	})

	t.Run("degraded rental service drops renter names only", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{reservations: []*domain.Reservation{
				{
					ResourceID:       resourceID,
					OwnerRef:         uuid.New(),
					StartDate:        date(2026, 1, 2),
					EndDate:          date(2026, 1, 3),
					ReservedCapacity: 2,
				},
			}},
			&stubPlanner{intervals: []domain.FreeInterval{
				{StartDate: date(2026, 1, 4), EndDate: date(2026, 1, 10), MinAvailableCapacity: 10, IsFullyAvailable: true},
			}},
			&stubRentalClient{degraded: true},
			nopLogger{},
		)

		report, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)

		require.Len(t, report.ReservedPeriods, 1)
		assert.Nil(t, report.ReservedPeriods[0].RenterName)
		assert.Equal(t, string(domain.StatusAvailable), report.Status)
	})

	t.Run("integrity fault keeps its classification", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{},
			&stubPlanner{err: fmt.Errorf("%w: resource=%s", planner.ErrIntegrityViolation, resourceID)},
			&stubRentalClient{},
			nopLogger{},
		)

		_, err := svc.Project(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10))
		require.ErrorIs(t, err, ErrIntegrityViolation)
		assert.NotErrorIs(t, err, ErrInternal)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc := NewService(&stubPeriodRepo{}, &stubReservationRepo{}, &stubPlanner{}, &stubRentalClient{}, nopLogger{})

		_, err := svc.Project(ctx, resourceID, date(2026, 1, 10), date(2026, 1, 1))
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}
