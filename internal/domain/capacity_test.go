package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makePeriod(start, end time.Time, total float64) *AvailabilityPeriod {
	return &AvailabilityPeriod{
		ID:            1,
		ResourceID:    uuid.New(),
		StartDate:     start,
		EndDate:       end,
		TotalCapacity: total,
	}
}

func makeReservation(start, end time.Time, amount float64) *Reservation {
	return &Reservation{
		ID:               1,
		ResourceID:       uuid.New(),
		OwnerRef:         uuid.New(),
		StartDate:        start,
		EndDate:          end,
		ReservedCapacity: amount,
	}
}

func TestCapacityOn(t *testing.T) {
	period := makePeriod(date(2026, 7, 1), date(2026, 7, 31), 10)

	t.Run("covered day without reservations", func(t *testing.T) {
		dc, err := CapacityOn(date(2026, 7, 15), []*AvailabilityPeriod{period}, nil)
		require.NoError(t, err)

		assert.Equal(t, 10.0, dc.TotalCapacity)
		assert.Equal(t, 0.0, dc.ReservedCapacity)
		assert.Equal(t, 10.0, dc.AvailableCapacity)
	})

	t.Run("reservations on the day are summed", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 7, 10), date(2026, 7, 20), 3),
			makeReservation(date(2026, 7, 15), date(2026, 7, 15), 2.5),
			makeReservation(date(2026, 7, 16), date(2026, 7, 18), 4),
		}

		dc, err := CapacityOn(date(2026, 7, 15), []*AvailabilityPeriod{period}, reservations)
		require.NoError(t, err)

		assert.Equal(t, 5.5, dc.ReservedCapacity)
		assert.Equal(t, 4.5, dc.AvailableCapacity)
	})

	t.Run("day outside any period yields zero capacity", func(t *testing.T) {
		dc, err := CapacityOn(date(2026, 8, 1), []*AvailabilityPeriod{period}, nil)
		require.NoError(t, err)

		assert.Equal(t, 0.0, dc.TotalCapacity)
		assert.Equal(t, 0.0, dc.AvailableCapacity)
	})

	t.Run("oversubscription is an integrity violation", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 7, 15), date(2026, 7, 15), 11),
		}

		_, err := CapacityOn(date(2026, 7, 15), []*AvailabilityPeriod{period}, reservations)
		require.ErrorIs(t, err, ErrIntegrityViolation)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		dc, err := CapacityOn(
			time.Date(2026, 7, 15, 18, 30, 0, 0, time.UTC),
			[]*AvailabilityPeriod{period}, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 7, 15), dc.Date)
	})
}

func TestRangeCapacity(t *testing.T) {
	period := makePeriod(date(2026, 7, 1), date(2026, 7, 31), 10)

	t.Run("minimum across the range", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 7, 5), date(2026, 7, 7), 6),
			makeReservation(date(2026, 7, 10), date(2026, 7, 10), 2),
		}

		minAvailable, covered, err := RangeCapacity(
			date(2026, 7, 1), date(2026, 7, 15),
			[]*AvailabilityPeriod{period}, reservations,
		)
		require.NoError(t, err)

		assert.True(t, covered)
		assert.Equal(t, 4.0, minAvailable)
	})

	t.Run("gap in coverage reports covered=false", func(t *testing.T) {
		minAvailable, covered, err := RangeCapacity(
			date(2026, 7, 25), date(2026, 8, 5),
			[]*AvailabilityPeriod{period}, nil,
		)
		require.NoError(t, err)

		assert.False(t, covered)
		assert.Equal(t, 0.0, minAvailable)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, _, err := RangeCapacity(
			date(2026, 7, 10), date(2026, 7, 1),
			[]*AvailabilityPeriod{period}, nil,
		)
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("single day range", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 7, 15), date(2026, 7, 15), 10),
		}

		minAvailable, covered, err := RangeCapacity(
			date(2026, 7, 15), date(2026, 7, 15),
			[]*AvailabilityPeriod{period}, reservations,
		)
		require.NoError(t, err)

		assert.True(t, covered)
		assert.Equal(t, 0.0, minAvailable)
	})

	t.Run("integrity violation surfaces, not clamps", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 7, 15), date(2026, 7, 15), 12),
		}

		_, _, err := RangeCapacity(
			date(2026, 7, 1), date(2026, 7, 31),
			[]*AvailabilityPeriod{period}, reservations,
		)
		require.ErrorIs(t, err, ErrIntegrityViolation)
	})
}

func TestSweepFreeIntervals(t *testing.T) {
	period := makePeriod(date(2026, 1, 1), date(2026, 1, 10), 10)

	t.Run("no reservations yields one fully available interval", func(t *testing.T) {
		intervals, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), nil, 3)
		require.NoError(t, err)

		require.Len(t, intervals, 1)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[0].EndDate)
		assert.Equal(t, 10.0, intervals[0].MinAvailableCapacity)
		assert.True(t, intervals[0].IsFullyAvailable)
	})

	t.Run("reservations split the range into gaps", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 1, 2), date(2026, 1, 2), 4),
			makeReservation(date(2026, 1, 5), date(2026, 1, 5), 4),
		}

		intervals, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), reservations, 7)
		require.NoError(t, err)

		require.Len(t, intervals, 3)

		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 1), intervals[0].EndDate)

		assert.Equal(t, date(2026, 1, 3), intervals[1].StartDate)
		assert.Equal(t, date(2026, 1, 4), intervals[1].EndDate)

		assert.Equal(t, date(2026, 1, 6), intervals[2].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[2].EndDate)

		for _, iv := range intervals {
			assert.Equal(t, 10.0, iv.MinAvailableCapacity)
			assert.True(t, iv.IsFullyAvailable)
		}
	})

	t.Run("exactly matching capacity qualifies", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 1, 1), date(2026, 1, 10), 3),
		}

		intervals, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), reservations, 7)
		require.NoError(t, err)

		require.Len(t, intervals, 1)
		assert.Equal(t, 7.0, intervals[0].MinAvailableCapacity)
		assert.False(t, intervals[0].IsFullyAvailable)
	})

	t.Run("adjacent segments with equal capacity are not merged", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 1, 1), date(2026, 1, 2), 2),
			makeReservation(date(2026, 1, 3), date(2026, 1, 4), 2),
		}

		intervals, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), reservations, 5)
		require.NoError(t, err)

		require.Len(t, intervals, 3)

		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 2), intervals[0].EndDate)
		assert.Equal(t, 8.0, intervals[0].MinAvailableCapacity)

		assert.Equal(t, date(2026, 1, 3), intervals[1].StartDate)
		assert.Equal(t, date(2026, 1, 4), intervals[1].EndDate)
		assert.Equal(t, 8.0, intervals[1].MinAvailableCapacity)

		assert.Equal(t, date(2026, 1, 5), intervals[2].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[2].EndDate)
		assert.True(t, intervals[2].IsFullyAvailable)
	})

	t.Run("request range is clipped to the period", func(t *testing.T) {
		intervals, err := SweepFreeIntervals(period, date(2025, 12, 20), date(2026, 1, 3), nil, 1)
		require.NoError(t, err)

		require.Len(t, intervals, 1)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 3), intervals[0].EndDate)
	})

	t.Run("range outside the period yields nothing", func(t *testing.T) {
		intervals, err := SweepFreeIntervals(period, date(2026, 2, 1), date(2026, 2, 10), nil, 1)
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("fully booked day leaves a hole", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 1, 4), date(2026, 1, 6), 10),
		}

		intervals, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), reservations, 1)
		require.NoError(t, err)

		require.Len(t, intervals, 2)
		assert.Equal(t, date(2026, 1, 1), intervals[0].StartDate)
		assert.Equal(t, date(2026, 1, 3), intervals[0].EndDate)
		assert.Equal(t, date(2026, 1, 7), intervals[1].StartDate)
		assert.Equal(t, date(2026, 1, 10), intervals[1].EndDate)
	})

	t.Run("oversubscription is an integrity violation", func(t *testing.T) {
		reservations := []*Reservation{
			makeReservation(date(2026, 1, 4), date(2026, 1, 6), 12),
		}

		_, err := SweepFreeIntervals(period, date(2026, 1, 1), date(2026, 1, 10), reservations, 1)
		require.ErrorIs(t, err, ErrIntegrityViolation)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := SweepFreeIntervals(period, date(2026, 1, 10), date(2026, 1, 1), nil, 1)
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestReservedOn(t *testing.T) {
	reservations := []*Reservation{
		makeReservation(date(2026, 3, 1), date(2026, 3, 10), 1.5),
		makeReservation(date(2026, 3, 5), date(2026, 3, 5), 2),
		makeReservation(date(2026, 3, 20), date(2026, 3, 25), 4),
	}

	assert.Equal(t, 3.5, ReservedOn(date(2026, 3, 5), reservations))
	assert.Equal(t, 1.5, ReservedOn(date(2026, 3, 6), reservations))
	assert.Equal(t, 0.0, ReservedOn(date(2026, 3, 15), reservations))
}
