package planner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindFreeIntervals(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	period := &domain.AvailabilityPeriod{
		ID:            1,
		ResourceID:    resourceID,
		StartDate:     date(2026, 1, 1),
		EndDate:       date(2026, 1, 10),
		TotalCapacity: 10,
	}

	reservation := func(start, end time.Time, amount float64) *domain.Reservation {
		return &domain.Reservation{
			ResourceID:       resourceID,
			OwnerRef:         uuid.New(),
			StartDate:        start,
			EndDate:          end,
			ReservedCapacity: amount,
		}
	}

	t.Run("reservations carve gaps out of the window", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{reservations: []*domain.Reservation{
				reservation(date(2026, 1, 2), date(2026, 1, 2), 4),
				reservation(date(2026, 1, 5), date(2026, 1, 5), 4),
			}},
			nopLogger{},
		)

		intervals, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10), 7)
		require.NoError(t, err)

		require.Len(t, intervals, 3)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 1), intervals[0].EndDate)
		assert.Equal(t, date(2026, 1, 3), intervals[1].StartDate)
		assert.Equal(t, date(2026, 1, 4), intervals[1].EndDate)
		assert.Equal(t, date(2026, 1, 6), intervals[2].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[2].EndDate)
	})

	t.Run("no declared availability yields empty result", func(t *testing.T) {
		svc := NewService(&stubPeriodRepo{}, &stubReservationRepo{}, nopLogger{})

		intervals, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10), 1)
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("days outside windows are excluded", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{},
			nopLogger{},
		)

		intervals, err := svc.FindFreeIntervals(ctx, resourceID, date(2025, 12, 25), date(2026, 1, 20), 1)
		require.NoError(t, err)

		require.Len(t, intervals, 1)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[0].EndDate)
	})

	t.Run("multiple windows produce per-window intervals", func(t *testing.T) {
		second := &domain.AvailabilityPeriod{
			ID:            2,
			ResourceID:    resourceID,
			StartDate:     date(2026, 1, 20),
			EndDate:       date(2026, 1, 25),
			TotalCapacity: 5,
		}

		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period, second}},
			&stubReservationRepo{},
			nopLogger{},
		)

		intervals, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 31), 3)
		require.NoError(t, err)

		require.Len(t, intervals, 2)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[0].EndDate)
		assert.Equal(t, date(2026, 1, 20), intervals[1].StartDate)
		assert.Equal(t, date(2026, 1, 25), intervals[1].EndDate)
	})

	t.Run("required above window capacity yields nothing", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{},
			nopLogger{},
		)

		intervals, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10), 11)
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		svc := NewService(&stubPeriodRepo{}, &stubReservationRepo{}, nopLogger{})

		_, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 10), date(2026, 1, 1), 1)
		require.ErrorIs(t, err, ErrInvalidRange)

		_, err = svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10), 0)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("oversubscribed window surfaces integrity violation", func(t *testing.T) {
		svc := NewService(
			&stubPeriodRepo{periods: []*domain.AvailabilityPeriod{period}},
			&stubReservationRepo{reservations: []*domain.Reservation{
				reservation(date(2026, 1, 5), date(2026, 1, 5), 12),
			}},
			nopLogger{},
		)

		_, err := svc.FindFreeIntervals(ctx, resourceID, date(2026, 1, 1), date(2026, 1, 10), 1)
		require.ErrorIs(t, err, ErrIntegrityViolation)
	})
}
