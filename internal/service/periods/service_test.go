package periods

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

type fakePeriodRepo struct {
	mu      sync.Mutex
	periods []*domain.AvailabilityPeriod
	nextID  int64
}

func (r *fakePeriodRepo) Create(_ context.Context, period *domain.AvailabilityPeriod) (*domain.AvailabilityPeriod, error) {
	r.nextID++
	period.ID = r.nextID
	period.CreatedAt = time.Now().UTC()
	stored := *period
	r.periods = append(r.periods, &stored)
	return period, nil
}

func (r *fakePeriodRepo) GetByResourceID(_ context.Context, resourceID uuid.UUID) ([]*domain.AvailabilityPeriod, error) {
	out := make([]*domain.AvailabilityPeriod, 0)
	for _, p := range r.periods {
		if p.ResourceID == resourceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePeriodRepo) GetIntersectingRange(_ context.Context, resourceID uuid.UUID, start, end time.Time) ([]*domain.AvailabilityPeriod, error) {
	out := make([]*domain.AvailabilityPeriod, 0)
	for _, p := range r.periods {
		if p.ResourceID == resourceID && p.Overlaps(start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTxManager struct{ repo *fakePeriodRepo }

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()
	return fn(ctx)
}

// conflictTxManager первые failures вызовов завершает конфликтом
// сериализации, затем ведет себя как обычный менеджер
type conflictTxManager struct {
	repo     *fakePeriodRepo
	failures int
	calls    int
}

func (m *conflictTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.calls <= m.failures {
		return errors.New("pq: could not serialize access due to concurrent update")
	}
	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *fakePeriodRepo) {
	repo := &fakePeriodRepo{}
	return NewService(repo, &fakeTxManager{repo: repo}, nopLogger{}), repo
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("publishes a window", func(t *testing.T) {
		svc, _ := newTestService()

		period, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 8, 31), 12)
		require.NoError(t, err)

		assert.NotZero(t, period.ID)
		assert.Equal(t, date(2026, 6, 1), period.StartDate)
		assert.Equal(t, date(2026, 8, 31), period.EndDate)
		assert.Equal(t, 12.0, period.TotalCapacity)
	})

	t.Run("zero capacity window is allowed", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 0)
		require.NoError(t, err)
	})

	t.Run("overlapping window is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 10)
		require.NoError(t, err)

		_, err = svc.Publish(ctx, resourceID, date(2026, 6, 30), date(2026, 7, 31), 5)
		require.ErrorIs(t, err, ErrPeriodOverlap)

		// Встык, без пересечения - можно
		_, err = svc.Publish(ctx, resourceID, date(2026, 7, 1), date(2026, 7, 31), 5)
		require.NoError(t, err)
	})

	t.Run("other resources do not conflict", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 10)
		require.NoError(t, err)

		_, err = svc.Publish(ctx, uuid.New(), date(2026, 6, 1), date(2026, 6, 30), 10)
		require.NoError(t, err)
	})

	t.Run("serialization conflict is retried", func(t *testing.T) {
		repo := &fakePeriodRepo{}
		txm := &conflictTxManager{repo: repo, failures: 1}
		svc := NewService(repo, txm, nopLogger{})

		period, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 10)
		require.NoError(t, err)

		assert.NotZero(t, period.ID)
		assert.Equal(t, 2, txm.calls)
	})

	t.Run("persistent serialization conflict maps to overlap", func(t *testing.T) {
		repo := &fakePeriodRepo{}
		txm := &conflictTxManager{repo: repo, failures: maxPublishAttempts}
		svc := NewService(repo, txm, nopLogger{})

		_, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 10)
		require.ErrorIs(t, err, ErrPeriodOverlap)
		assert.Equal(t, maxPublishAttempts, txm.calls)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Publish(ctx, resourceID, date(2026, 6, 30), date(2026, 6, 1), 10)
		require.ErrorIs(t, err, ErrInvalidRange)

		_, err = svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), -1)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	svc, _ := newTestService()

	_, err := svc.Publish(ctx, resourceID, date(2026, 6, 1), date(2026, 6, 30), 10)
	require.NoError(t, err)
	_, err = svc.Publish(ctx, resourceID, date(2026, 7, 1), date(2026, 7, 31), 8)
	require.NoError(t, err)

	periods, err := svc.List(ctx, resourceID)
	require.NoError(t, err)
	assert.Len(t, periods, 2)

	periods, err = svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, periods)
}
