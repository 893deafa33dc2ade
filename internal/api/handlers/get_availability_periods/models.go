package get_availability_periods

import (
	"time"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// PeriodResponse HTTP модель одного окна доступности
type PeriodResponse struct {
	ID            int64   `json:"id"`
	ResourceID    string  `json:"resourceId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalCapacity float64 `json:"totalCapacity"`
	CreatedAt     string  `json:"createdAt"`
}

// PeriodsResponse HTTP response model
type PeriodsResponse struct {
	ResourceID string           `json:"resourceId"`
	Periods    []PeriodResponse `json:"periods"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(resourceID string, periods []*domain.AvailabilityPeriod) *PeriodsResponse {
	resp := &PeriodsResponse{
		ResourceID: resourceID,
		Periods:    make([]PeriodResponse, 0, len(periods)),
	}

	for _, p := range periods {
		resp.Periods = append(resp.Periods, PeriodResponse{
			ID:            p.ID,
			ResourceID:    p.ResourceID.String(),
			StartDate:     p.StartDate.Format(domain.DateFormat),
			EndDate:       p.EndDate.Format(domain.DateFormat),
			TotalCapacity: p.TotalCapacity,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
