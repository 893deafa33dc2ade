package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reserveCapacity "github.com/m04kA/RMS-AvailabilityService/internal/usecase/reserve_capacity"
)

type stubUseCase struct {
	resp *reserveCapacity.Response
	err  error

	gotReq *reserveCapacity.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *reserveCapacity.Request) (*reserveCapacity.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func requestBody(resourceID, ownerRef uuid.UUID) string {
	return fmt.Sprintf(
		`{"resourceId":%q,"ownerRef":%q,"startDate":"2026-07-01","endDate":"2026-07-10","amount":2.5}`,
		resourceID, ownerRef,
	)
}

func TestHandle(t *testing.T) {
	resourceID := uuid.New()
	ownerRef := uuid.New()

	t.Run("created", func(t *testing.T) {
		uc := &stubUseCase{resp: &reserveCapacity.Response{
			ID:         42,
			ResourceID: resourceID,
			OwnerRef:   ownerRef,
			StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Amount:     2.5,
			CreatedAt:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		}}
		h := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
			strings.NewReader(requestBody(resourceID, ownerRef)))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp ReservationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, resourceID.String(), resp.ResourceID)
		assert.Equal(t, "2026-07-01", resp.StartDate)
		assert.Equal(t, "2026-07-10", resp.EndDate)
		assert.Equal(t, 2.5, resp.Amount)

		// UUID и даты распарсены в модель use case
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, resourceID, uc.gotReq.ResourceID)
		assert.Equal(t, ownerRef, uc.gotReq.OwnerRef)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewHandler(&stubUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		h := NewHandler(&stubUseCase{}, nopLogger{})

		body := `{"resourceId":"not-a-uuid","ownerRef":"also-bad","startDate":"2026-07-01","endDate":"2026-07-10","amount":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("usecase errors map to statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"resource not found", reserveCapacity.ErrResourceNotFound, http.StatusNotFound},
			{"no availability", reserveCapacity.ErrNoAvailabilityDeclared, http.StatusConflict},
			{"insufficient capacity", reserveCapacity.ErrInsufficientCapacity, http.StatusConflict},
			{"reservation conflict", reserveCapacity.ErrReservationConflict, http.StatusConflict},
			{"invalid range", reserveCapacity.ErrInvalidRange, http.StatusBadRequest},
			{"internal", reserveCapacity.ErrInternal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

				req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
					strings.NewReader(requestBody(resourceID, ownerRef)))
				rec := httptest.NewRecorder()

				h.Handle(rec, req)

				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})
}
