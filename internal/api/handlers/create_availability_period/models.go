package create_availability_period

import (
	"time"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// CreatePeriodRequest HTTP request model
type CreatePeriodRequest struct {
	StartDate     string  `json:"startDate"` // "2026-06-01"
	EndDate       string  `json:"endDate"`   // "2026-08-31"
	TotalCapacity float64 `json:"totalCapacity"`
}

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID            int64   `json:"id"`
	ResourceID    string  `json:"resourceId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalCapacity float64 `json:"totalCapacity"`
	CreatedAt     string  `json:"createdAt"`
}

// ParseDates парсит даты запроса
func (r *CreatePeriodRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err = time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(p *domain.AvailabilityPeriod) *PeriodResponse {
	return &PeriodResponse{
		ID:            p.ID,
		ResourceID:    p.ResourceID.String(),
		StartDate:     p.StartDate.Format(domain.DateFormat),
		EndDate:       p.EndDate.Format(domain.DateFormat),
		TotalCapacity: p.TotalCapacity,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
