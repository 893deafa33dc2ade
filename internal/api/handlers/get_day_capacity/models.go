package get_day_capacity

import (
	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// DayCapacityResponse HTTP response model
// Для дня вне объявленных окон все значения нулевые
type DayCapacityResponse struct {
	ResourceID        string  `json:"resourceId"`
	Date              string  `json:"date"`
	TotalCapacity     float64 `json:"totalCapacity"`
	ReservedCapacity  float64 `json:"reservedCapacity"`
	AvailableCapacity float64 `json:"availableCapacity"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(resourceID string, dc *domain.DayCapacity) *DayCapacityResponse {
	return &DayCapacityResponse{
		ResourceID:        resourceID,
		Date:              dc.Date.Format(domain.DateFormat),
		TotalCapacity:     dc.TotalCapacity,
		ReservedCapacity:  dc.ReservedCapacity,
		AvailableCapacity: dc.AvailableCapacity,
	}
}
